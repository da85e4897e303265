package authenticator

import (
	"context"
)

// Attributes are the custom claims the identity provider stores per user.
// They gate app access: a user without a user_type has not finished
// onboarding yet.
type Attributes struct {
	UserType   string
	University string
}

// Claims is the identity read from the cached ID token. The token is parsed
// without signature verification: it came out of our own token exchange and
// is only used to read profile fields, never to authorize anything locally.
type Claims struct {
	Subject    string
	Email      string
	Name       string
	Attributes Attributes
}

type Authenticator interface {
	// AuthCodeURL builds the provider login URL with a PKCE challenge. The
	// verifier is persisted so Exchange can complete the flow in a later
	// process.
	AuthCodeURL(state string) (string, error)

	Exchange(ctx context.Context, code string) error

	// AccessToken returns a currently valid access token, refreshing
	// silently when the cached one expired.
	AccessToken(ctx context.Context) (string, error)

	Claims() (Claims, error)

	UpdateAttributes(ctx context.Context, attrs Attributes) error

	// RefreshSilent forces a token refresh so newly granted attributes are
	// picked up without a redirect.
	RefreshSilent(ctx context.Context) error

	// ForceRelogin drops the cached session and returns a fresh login URL.
	ForceRelogin(state string) (string, error)
}
