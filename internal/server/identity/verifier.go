// Package identity verifies provider access tokens presented at sign-in and
// resolves them to a stable provider subject plus profile data.
package identity

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/standup/internal/common"
)

// Profile is what a provider reports about the token holder.
type Profile struct {
	Provider    string
	Subject     string
	DisplayName string
	Email       string
	PhotoURL    string
}

// Verifier checks a provider token and returns the profile it belongs to.
// An invalid token yields an error wrapping common.ErrorUnauthorized.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Profile, error)
}

// Registry dispatches verification by provider name.
type Registry struct {
	verifiers map[string]Verifier
}

func NewRegistry() *Registry {
	return &Registry{verifiers: map[string]Verifier{}}
}

// Register adds v for provider, replacing any earlier one.
func (r *Registry) Register(provider string, v Verifier) {
	r.verifiers[provider] = v
}

func (r *Registry) Verify(ctx context.Context, provider, token string) (*Profile, error) {
	v, ok := r.verifiers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownProvider, provider)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: empty provider token", common.ErrorUnauthorized)
	}
	return v.Verify(ctx, token)
}

// statusError converts a failed provider response into a package error.
func statusError(provider string, code int) error {
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return fmt.Errorf("%w: %s rejected the token", common.ErrorUnauthorized, provider)
	}
	return fmt.Errorf("%s userinfo: unexpected status %d", provider, code)
}
