package ports

import (
	"context"

	"github.com/sarah-habibi/blog-api/internal/core/domain"
)

// SignupInput carries the fields of a local account registration.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// GoogleSigninInput carries the identity asserted by the upstream provider.
// Trust in that assertion is delegated upstream; no password is checked.
type GoogleSigninInput struct {
	Username       string
	Email          string
	GooglePhotoURL string
}

// AuthService implements signup, signin and federated signin-or-create.
type AuthService interface {
	// Signup creates a local account. No token is issued; the caller signs in
	// separately.
	Signup(ctx context.Context, input SignupInput) error
	// Signin authenticates by email and password, returning a session token
	// and the authenticated user.
	Signin(ctx context.Context, email, password string) (string, *domain.User, error)
	// Google signs in an existing account by email, or auto-provisions one
	// with a random password, then returns a session token and the user.
	Google(ctx context.Context, input GoogleSigninInput) (string, *domain.User, error)
}
