package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/google/go-github/v82/github"
)

// GitHubVerifier resolves a GitHub OAuth token through the REST API
// (GET /user).
type GitHubVerifier struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// NewGitHubVerifier builds a verifier. An empty baseURL targets api.github.com.
func NewGitHubVerifier(httpClient *http.Client, baseURL string) (*GitHubVerifier, error) {
	v := &GitHubVerifier{httpClient: httpClient}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("github base url: %w", err)
		}
		v.baseURL = u
	}
	return v, nil
}

func (v *GitHubVerifier) Verify(ctx context.Context, token string) (*Profile, error) {
	client := github.NewClient(v.httpClient).WithAuthToken(token)
	if v.baseURL != nil {
		client.BaseURL = v.baseURL
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil {
			return nil, statusError(common.ProviderGitHub, resp.StatusCode)
		}
		return nil, fmt.Errorf("github request: %w", err)
	}
	if user.GetID() == 0 {
		return nil, fmt.Errorf("%w: github returned no user id", common.ErrorUnauthorized)
	}

	name := user.GetName()
	if name == "" {
		name = user.GetLogin()
	}

	return &Profile{
		Provider:    common.ProviderGitHub,
		Subject:     strconv.FormatInt(user.GetID(), 10),
		DisplayName: name,
		Email:       user.GetEmail(),
		PhotoURL:    user.GetAvatarURL(),
	}, nil
}
