package ports

import (
	"context"

	"github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/domain"
)

// CreatePostInput carries the fields of a new post.
type CreatePostInput struct {
	Title    string
	Content  string
	Image    string
	Category string
}

// GetPostsQuery mirrors the public listing's query string.
type GetPostsQuery struct {
	UserID     string
	Category   string
	Slug       string
	PostID     string
	SearchTerm string
	// Order is "asc" or "desc" (default) by update time.
	Order      string
	StartIndex int
	Limit      int
}

// GetPostsResult bundles the listing with the dashboard aggregates.
type GetPostsResult struct {
	Posts               []domain.Post
	TotalPosts          int64
	LastMonthPosts      []domain.Post
	LastMonthPostsCount int64
}

// PostService implements post CRUD, the bookmark toggle, and listings.
type PostService interface {
	Create(ctx context.Context, caller auth.Claims, input CreatePostInput) (*domain.Post, error)
	GetPosts(ctx context.Context, query GetPostsQuery) (*GetPostsResult, error)
	Update(ctx context.Context, caller auth.Claims, postID, userID string, update PostUpdate) (*domain.Post, error)
	Delete(ctx context.Context, caller auth.Claims, postID, userID string) error
	// Bookmark toggles the caller's bookmark on a post and returns the
	// updated post.
	Bookmark(ctx context.Context, caller auth.Claims, postID string) (*domain.Post, error)
	MyBookmarks(ctx context.Context, caller auth.Claims, userID string) ([]domain.Post, error)
}
