package ports

import (
	"context"
	"time"

	"github.com/sarah-habibi/blog-api/internal/core/domain"
)

// UserUpdate carries the profile fields an update may touch. Empty fields are
// left untouched by the repository.
type UserUpdate struct {
	Username       string
	Email          string
	ProfilePicture string
	PasswordHash   string
}

// ListUsersQuery carries pagination and ordering for the admin user listing.
type ListUsersQuery struct {
	StartIndex int
	Limit      int
	// SortAsc orders by creation time ascending; default is newest first.
	SortAsc bool
}

// UserRepository is the persistence boundary for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query ListUsersQuery) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
