package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/domain"
	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

// AuthService implements signup, signin, and Google signin-or-create.
type AuthService struct {
	users  ports.UserRepository
	issuer *auth.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, issuer *auth.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) error {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return domain.BadRequest("All fields are required")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:       input.Username,
		Email:          input.Email,
		PasswordHash:   hash,
		ProfilePicture: domain.DefaultProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return domain.E(http.StatusConflict, "Username or email already taken")
		}
		return err
	}

	s.logger.Info().Str("username", input.Username).Msg("user signed up")
	return nil
}

func (s *AuthService) Signin(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.BadRequest("All fields are required!")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.BadRequest("User not found!")
		}
		return "", nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", nil, domain.BadRequest("Invalid username or password!")
	}

	token, err := s.issuer.Issue(auth.Claims{UserID: user.ID, IsAdmin: user.IsAdmin})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Google signs in by upstream-asserted email, provisioning an account on
// first use. The lookup-then-create pair is not atomic: two concurrent first
// signins for the same email can race, and the loser surfaces the store's
// duplicate error.
func (s *AuthService) Google(ctx context.Context, input ports.GoogleSigninInput) (string, *domain.User, error) {
	if input.Email == "" {
		return "", nil, domain.BadRequest("All fields are required!")
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	if user == nil {
		user, err = s.provisionGoogleUser(ctx, input)
		if err != nil {
			return "", nil, err
		}
		s.logger.Info().Str("username", user.Username).Msg("google user provisioned")
	}

	token, err := s.issuer.Issue(auth.Claims{UserID: user.ID, IsAdmin: user.IsAdmin})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) provisionGoogleUser(ctx context.Context, input ports.GoogleSigninInput) (*domain.User, error) {
	// The generated password is hashed and discarded; the account can only
	// ever sign in through the provider.
	hash, err := auth.HashPassword(generatedPassword())
	if err != nil {
		return nil, err
	}

	picture := input.GooglePhotoURL
	if picture == "" {
		picture = domain.DefaultProfilePicture
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:       derivedUsername(input.Username),
		Email:          input.Email,
		PasswordHash:   hash,
		ProfilePicture: picture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			// Username collision on the random suffix: retry once with a
			// fresh suffix before giving up.
			user.Username = derivedUsername(input.Username)
			created, err = s.users.Create(ctx, user)
		}
		if err != nil {
			return nil, err
		}
	}
	return created, nil
}

// derivedUsername turns a display name into a deduplicated handle:
// lowercased, spaces removed, plus a 4-digit random suffix.
func derivedUsername(name string) string {
	base := strings.Join(strings.Split(strings.ToLower(name), " "), "")
	return base + randomDigits(4)
}

// generatedPassword returns 16 random base36 characters.
func generatedPassword() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 16)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			// fallback: time-derived, still hashed before storage
			return fmt.Sprintf("%x", time.Now().UnixNano())
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b)
}

func randomDigits(n int) string {
	const digits = "0123456789"
	b := make([]byte, n)
	for i := range b {
		d, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			b[i] = '0'
			continue
		}
		b[i] = digits[d.Int64()]
	}
	return string(b)
}
