package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	coreauth "github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/domain"
	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

func newAuthService(repo ports.UserRepository) *AuthService {
	issuer, _ := coreauth.NewTokenIssuer("secret")
	return NewAuthService(repo, issuer, zerolog.Nop())
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	err := svc.Signup(context.Background(), ports.SignupInput{
		Username: "alice", Email: "alice@example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	stored, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.IsAdmin {
		t.Fatalf("new users must not be admins")
	}
	if stored.ProfilePicture != domain.DefaultProfilePicture {
		t.Fatalf("expected default profile picture, got %q", stored.ProfilePicture)
	}
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	cases := []ports.SignupInput{
		{Email: "a@x.com", Password: "p"},
		{Username: "a", Password: "p"},
		{Username: "a", Email: "a@x.com"},
	}
	for _, input := range cases {
		err := svc.Signup(context.Background(), input)
		var de *domain.Error
		if !asDomainError(err, &de) || de.StatusCode != http.StatusBadRequest || de.Message != "All fields are required" {
			t.Fatalf("input %+v: expected 400 'All fields are required', got %v", input, err)
		}
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	input := ports.SignupInput{Username: "bob", Email: "bob@example.com", Password: "pass"}
	if err := svc.Signup(context.Background(), input); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	err := svc.Signup(context.Background(), input)
	var de *domain.Error
	if !asDomainError(err, &de) || de.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %v", err)
	}
}

func TestAuthService_Signin_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_ = svc.Signup(context.Background(), ports.SignupInput{Username: "carol", Email: "carol@example.com", Password: "s3cret"})

	token, user, err := svc.Signin(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	issuer, _ := coreauth.NewTokenIssuer("secret")
	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID || claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Signin_UserNotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _, err := svc.Signin(context.Background(), "a@x.com", "secret1")
	var de *domain.Error
	if !asDomainError(err, &de) || de.StatusCode != http.StatusBadRequest || de.Message != "User not found!" {
		t.Fatalf("expected 400 'User not found!', got %v", err)
	}
}

func TestAuthService_Signin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_ = svc.Signup(context.Background(), ports.SignupInput{Username: "dave", Email: "dave@example.com", Password: "goodpass"})

	_, _, err := svc.Signin(context.Background(), "dave@example.com", "badpass")
	var de *domain.Error
	if !asDomainError(err, &de) || de.StatusCode != http.StatusBadRequest || de.Message != "Invalid username or password!" {
		t.Fatalf("expected 400 'Invalid username or password!', got %v", err)
	}
}

func TestAuthService_Google_ExistingUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_ = svc.Signup(context.Background(), ports.SignupInput{Username: "erin", Email: "erin@example.com", Password: "pass"})

	token, user, err := svc.Google(context.Background(), ports.GoogleSigninInput{
		Username: "Erin Smith", Email: "erin@example.com",
	})
	if err != nil {
		t.Fatalf("google signin failed: %v", err)
	}
	if token == "" || user.Username != "erin" {
		t.Fatalf("expected existing account signin, got user %+v", user)
	}
}

func TestAuthService_Google_ProvisionsNewUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	token, user, err := svc.Google(context.Background(), ports.GoogleSigninInput{
		Username:       "Frank Lloyd",
		Email:          "frank@example.com",
		GooglePhotoURL: "https://example.com/frank.png",
	})
	if err != nil {
		t.Fatalf("google signin failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	if !strings.HasPrefix(user.Username, "franklloyd") {
		t.Fatalf("expected derived username with franklloyd prefix, got %q", user.Username)
	}
	suffix := strings.TrimPrefix(user.Username, "franklloyd")
	if len(suffix) != 4 {
		t.Fatalf("expected 4-digit suffix, got %q", suffix)
	}
	if user.ProfilePicture != "https://example.com/frank.png" {
		t.Fatalf("expected provided photo, got %q", user.ProfilePicture)
	}

	stored, err := repo.FindByEmail(context.Background(), "frank@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.PasswordHash == "" || !strings.HasPrefix(stored.PasswordHash, "$2") {
		t.Fatalf("expected bcrypt hash stored, got %q", stored.PasswordHash)
	}
}

// asDomainError mirrors errors.As for *domain.Error without dragging the
// errors package into every assertion.
func asDomainError(err error, target **domain.Error) bool {
	de, ok := err.(*domain.Error)
	if ok {
		*target = de
	}
	return ok
}
