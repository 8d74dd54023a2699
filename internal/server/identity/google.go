package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/standup/internal/common"
	"golang.org/x/oauth2"
)

// DefaultGoogleUserInfoURL is the OpenID Connect userinfo endpoint.
const DefaultGoogleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

type googleUserInfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// GoogleVerifier resolves a Google access token via the userinfo endpoint.
type GoogleVerifier struct {
	httpClient  *http.Client
	userInfoURL string
}

func NewGoogleVerifier(httpClient *http.Client, userInfoURL string) *GoogleVerifier {
	if userInfoURL == "" {
		userInfoURL = DefaultGoogleUserInfoURL
	}
	return &GoogleVerifier{httpClient: httpClient, userInfoURL: userInfoURL}
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Profile, error) {
	if v.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, v.httpClient)
	}
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("google request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(common.ProviderGoogle, resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("google userinfo decode: %w", err)
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("%w: google returned no subject", common.ErrorUnauthorized)
	}

	return &Profile{
		Provider:    common.ProviderGoogle,
		Subject:     info.Sub,
		DisplayName: info.Name,
		Email:       info.Email,
		PhotoURL:    info.Picture,
	}, nil
}
