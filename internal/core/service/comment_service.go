package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/domain"
	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

const commentPageSize = 5

// CommentService implements comment CRUD and the like toggle.
type CommentService struct {
	comments ports.CommentRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, logger: logger}
}

func (s *CommentService) Create(ctx context.Context, caller auth.Claims, input ports.CreateCommentInput) (*domain.Comment, error) {
	if caller.UserID != input.UserID {
		return nil, domain.Forbidden("you are not allowed to post a comment")
	}
	if input.Content == "" || input.PostID == "" {
		return nil, domain.BadRequest("Please provide all required fields")
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		PostID:    input.PostID,
		UserID:    input.UserID,
		Content:   input.Content,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *CommentService) GetPostComments(ctx context.Context, postID string, startIndex int) (*ports.PostCommentsResult, error) {
	comments, err := s.comments.FindByPost(ctx, postID, startIndex, commentPageSize)
	if err != nil {
		return nil, err
	}

	total, err := s.comments.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &ports.PostCommentsResult{Comments: comments, TotalComments: total}, nil
}

// Like toggles the caller's like on a comment. Any authenticated identity may
// like any comment. List and counter persist as one document write.
func (s *CommentService) Like(ctx context.Context, caller auth.Claims, commentID string) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return nil, domain.NotFound("Comment not found")
		}
		return nil, err
	}

	likes, count, _ := domain.Toggle(comment.Likes, comment.NumberOfLikes, caller.UserID)

	updated, err := s.comments.SetLikes(ctx, commentID, likes, count)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return nil, domain.NotFound("Comment not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *CommentService) Edit(ctx context.Context, caller auth.Claims, commentID, content string) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return nil, domain.NotFound("comment not found")
		}
		return nil, err
	}
	if caller.UserID != comment.UserID {
		return nil, domain.Forbidden("You are not allowed to edit this comment.")
	}

	updated, err := s.comments.UpdateContent(ctx, commentID, content)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return nil, domain.NotFound("comment not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, caller auth.Claims, commentID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return domain.NotFound("comment not found")
		}
		return err
	}
	if caller.UserID != comment.UserID && !caller.IsAdmin {
		return domain.Forbidden("You are not allowed to delete this comment.")
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	s.logger.Info().Str("comment_id", commentID).Str("user_id", caller.UserID).Msg("comment deleted")
	return nil
}
