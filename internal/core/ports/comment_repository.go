package ports

import (
	"context"

	"github.com/sarah-habibi/blog-api/internal/core/domain"
)

// CommentRepository is the persistence boundary for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// FindByPost returns a post's comments newest first.
	FindByPost(ctx context.Context, postID string, startIndex, limit int) ([]domain.Comment, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
	// SetLikes persists the membership list and its counter as one document
	// write, so the stored counter never diverges from the list.
	SetLikes(ctx context.Context, id string, likes []string, count int) (*domain.Comment, error)
}
