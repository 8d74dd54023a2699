// Package identity runs the provider side of sign-in: an OAuth 2.0 device
// authorization flow that yields a provider access token for the server to
// verify.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/logging"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

var ErrProviderNotConfigured = errors.New("provider not configured")

// GoogleEndpoint is Google's OAuth 2.0 endpoint including device
// authorization.
var GoogleEndpoint = oauth2.Endpoint{
	AuthURL:       "https://accounts.google.com/o/oauth2/v2/auth",
	TokenURL:      "https://oauth2.googleapis.com/token",
	DeviceAuthURL: "https://oauth2.googleapis.com/device/code",
	AuthStyle:     oauth2.AuthStyleInParams,
}

type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	Scopes       []string
	Endpoint     oauth2.Endpoint
}

func GitHub(clientID, clientSecret string) ProviderConfig {
	return ProviderConfig{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     github.Endpoint,
	}
}

func Google(clientID, clientSecret string) ProviderConfig {
	return ProviderConfig{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     GoogleEndpoint,
	}
}

// PromptFunc shows the user code and where to enter it.
type PromptFunc func(userCode, verificationURL string)

type DeviceFlow struct {
	providers  map[string]ProviderConfig
	prompt     PromptFunc
	httpClient *http.Client
	logger     logging.Logger
}

type Option func(*DeviceFlow)

func WithHTTPClient(c *http.Client) Option {
	return func(d *DeviceFlow) { d.httpClient = c }
}

func NewDeviceFlow(providers map[string]ProviderConfig, prompt PromptFunc, l logging.Logger, opts ...Option) *DeviceFlow {
	d := &DeviceFlow{
		providers: providers,
		prompt:    prompt,
		logger:    l.With("module", "identity"),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Token runs the device flow for provider and blocks until the user
// approves, denies, or the device code expires.
func (d *DeviceFlow) Token(ctx context.Context, provider string) (string, error) {
	if !common.IsKnownProvider(provider) {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownProvider, provider)
	}
	pc, ok := d.providers[provider]
	if !ok || pc.ClientID == "" {
		return "", fmt.Errorf("%w: %s", ErrProviderNotConfigured, provider)
	}

	cfg := &oauth2.Config{
		ClientID:     pc.ClientID,
		ClientSecret: pc.ClientSecret,
		Scopes:       pc.Scopes,
		Endpoint:     pc.Endpoint,
	}
	if d.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, d.httpClient)
	}

	da, err := cfg.DeviceAuth(ctx)
	if err != nil {
		return "", fmt.Errorf("device authorization: %w", err)
	}

	url := da.VerificationURIComplete
	if url == "" {
		url = da.VerificationURI
	}
	if d.prompt != nil {
		d.prompt(da.UserCode, url)
	}
	d.logger.Debug(ctx, "waiting for device approval", "provider", provider, "expires", da.Expiry)

	tok, err := cfg.DeviceAccessToken(ctx, da)
	if err != nil {
		return "", fmt.Errorf("device token: %w", err)
	}
	return tok.AccessToken, nil
}
