package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/domain"
	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

var usernameAlphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// UserService implements profile management and the admin user listing.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Update(ctx context.Context, caller auth.Claims, input ports.UpdateUserInput) (*domain.User, error) {
	if caller.UserID != input.UserID {
		return nil, domain.Forbidden("You are not allowed to update this user")
	}

	update := ports.UserUpdate{
		Email:          input.Email,
		ProfilePicture: input.ProfilePicture,
	}

	if input.Password != "" {
		if len(input.Password) < 6 {
			return nil, domain.BadRequest("Password must be at least 6 characters")
		}
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = hash
	}

	if input.Username != "" {
		if len(input.Username) < 7 || len(input.Username) > 20 {
			return nil, domain.BadRequest("Username must be between 7 and 20 characters")
		}
		if strings.Contains(input.Username, " ") {
			return nil, domain.BadRequest("User can not contain spaces")
		}
		if input.Username != strings.ToLower(input.Username) {
			return nil, domain.BadRequest("Username must be lowercase")
		}
		if !usernameAlphanumeric.MatchString(input.Username) {
			return nil, domain.BadRequest("User can only contain letters and numbers")
		}
		update.Username = input.Username
	}

	updated, err := s.users.Update(ctx, input.UserID, update)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.BadRequest("User to be updated not found!")
		}
		return nil, err
	}
	return updated, nil
}

func (s *UserService) DeleteAccount(ctx context.Context, caller auth.Claims, userID string) error {
	if caller.UserID != userID {
		return domain.BadRequest("You are not allowed to delete this account!")
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("account deleted")
	return nil
}

func (s *UserService) List(ctx context.Context, caller auth.Claims, query ports.ListUsersQuery) (*ports.ListUsersResult, error) {
	if !caller.IsAdmin {
		return nil, domain.Forbidden("You are not allowed to see all users")
	}
	if query.Limit <= 0 {
		query.Limit = 9
	}

	users, err := s.users.List(ctx, query)
	if err != nil {
		return nil, err
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	lastMonth, err := s.users.CountCreatedSince(ctx, oneMonthAgo(time.Now().UTC()))
	if err != nil {
		return nil, err
	}

	return &ports.ListUsersResult{
		Users:           users,
		TotalUsers:      total,
		LastMonthsUsers: lastMonth,
	}, nil
}

func (s *UserService) AdminDelete(ctx context.Context, caller auth.Claims, userID string) error {
	if !caller.IsAdmin {
		return domain.Forbidden("You are not allowed to delete users")
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Str("admin_id", caller.UserID).Msg("user deleted by admin")
	return nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// oneMonthAgo mirrors the dashboard window: same day of the previous month.
func oneMonthAgo(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, time.UTC)
}
