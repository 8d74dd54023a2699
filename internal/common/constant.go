package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Identity provider names accepted by SignIn.
const (
	ProviderGitHub = "github"
	ProviderGoogle = "google"
)
