package ports

import (
	"context"
	"time"

	"github.com/sarah-habibi/blog-api/internal/core/domain"
)

// PostFilter is the query-builder value object for post lookups. Zero fields
// contribute no predicate; the Mongo adapter translates the rest into its
// native filter syntax.
type PostFilter struct {
	UserID   string
	Category string
	Slug     string
	PostID   string
	// SearchTerm matches title or content, case-insensitively.
	SearchTerm string
	// CreatedSince keeps only posts created at or after the given instant.
	CreatedSince time.Time
}

// PostPage carries ordering and pagination for post listings.
type PostPage struct {
	// SortAsc orders by update time ascending; default is newest first.
	SortAsc    bool
	StartIndex int
	Limit      int
}

// PostUpdate carries the editable fields of a post. Empty fields are left
// untouched by the repository.
type PostUpdate struct {
	Title    string
	Content  string
	Category string
	Image    string
}

// PostRepository is the persistence boundary for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Find(ctx context.Context, filter PostFilter, page PostPage) ([]domain.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
	Update(ctx context.Context, id string, update PostUpdate) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	// SetBookmarks persists the membership list and its counter as one
	// document write, so the stored counter never diverges from the list.
	SetBookmarks(ctx context.Context, id string, bookmarks []string, count int) (*domain.Post, error)
	FindBookmarkedBy(ctx context.Context, userID string) ([]domain.Post, error)
}
