package ports

import (
	"context"

	"github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/domain"
)

// UpdateUserInput carries a self-service profile update. Empty fields are
// skipped; non-empty ones are validated before touching the store.
type UpdateUserInput struct {
	UserID         string
	Username       string
	Email          string
	Password       string
	ProfilePicture string
}

// ListUsersResult is the admin dashboard view of the user base.
type ListUsersResult struct {
	Users           []domain.User
	TotalUsers      int64
	LastMonthsUsers int64
}

// UserService implements profile management and the admin user listing.
type UserService interface {
	Update(ctx context.Context, caller auth.Claims, input UpdateUserInput) (*domain.User, error)
	DeleteAccount(ctx context.Context, caller auth.Claims, userID string) error
	List(ctx context.Context, caller auth.Claims, query ListUsersQuery) (*ListUsersResult, error)
	AdminDelete(ctx context.Context, caller auth.Claims, userID string) error
	Get(ctx context.Context, userID string) (*domain.User, error)
}
