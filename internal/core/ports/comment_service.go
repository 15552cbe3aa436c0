package ports

import (
	"context"

	"github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/domain"
)

// CreateCommentInput carries a new comment. UserID is the declared author and
// must match the authenticated caller.
type CreateCommentInput struct {
	PostID  string
	UserID  string
	Content string
}

// PostCommentsResult bundles a comment page with the post's total.
type PostCommentsResult struct {
	Comments      []domain.Comment
	TotalComments int64
}

// CommentService implements comment CRUD and the like toggle.
type CommentService interface {
	Create(ctx context.Context, caller auth.Claims, input CreateCommentInput) (*domain.Comment, error)
	GetPostComments(ctx context.Context, postID string, startIndex int) (*PostCommentsResult, error)
	// Like toggles the caller's like on a comment and returns the updated
	// comment.
	Like(ctx context.Context, caller auth.Claims, commentID string) (*domain.Comment, error)
	Edit(ctx context.Context, caller auth.Claims, commentID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, caller auth.Claims, commentID string) error
}
