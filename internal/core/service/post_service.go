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

const defaultPostPageSize = 9

// PostService implements post CRUD, listings, and the bookmark toggle.
type PostService struct {
	posts  ports.PostRepository
	stats  ports.StatsCache
	logger zerolog.Logger
}

// NewPostService builds a PostService. stats may be nil, in which case the
// dashboard aggregates are computed on every listing.
func NewPostService(posts ports.PostRepository, stats ports.StatsCache, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, stats: stats, logger: logger}
}

func (s *PostService) Create(ctx context.Context, caller auth.Claims, input ports.CreatePostInput) (*domain.Post, error) {
	if !caller.IsAdmin {
		return nil, domain.Forbidden("You are not allowed to create a post")
	}
	if input.Title == "" || input.Content == "" {
		return nil, domain.BadRequest("Please provide all required fields")
	}

	image := input.Image
	if image == "" {
		image = domain.DefaultPostImage
	}
	category := input.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	now := time.Now().UTC()
	post := &domain.Post{
		UserID:    caller.UserID,
		Title:     input.Title,
		Content:   input.Content,
		Image:     image,
		Category:  category,
		Slug:      domain.Slugify(input.Title),
		Bookmarks: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		if errors.Is(err, domain.ErrPostExists) {
			return nil, domain.BadRequest("A post with this title already exists")
		}
		return nil, err
	}

	s.logger.Info().Str("slug", created.Slug).Str("user_id", caller.UserID).Msg("post created")
	return created, nil
}

func (s *PostService) GetPosts(ctx context.Context, query ports.GetPostsQuery) (*ports.GetPostsResult, error) {
	if query.Limit <= 0 {
		query.Limit = defaultPostPageSize
	}

	filter := ports.PostFilter{
		UserID:     query.UserID,
		Category:   query.Category,
		Slug:       query.Slug,
		PostID:     query.PostID,
		SearchTerm: query.SearchTerm,
	}
	page := ports.PostPage{
		SortAsc:    query.Order == "asc",
		StartIndex: query.StartIndex,
		Limit:      query.Limit,
	}

	posts, err := s.posts.Find(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	since := oneMonthAgo(time.Now().UTC())
	lastMonthPosts, err := s.posts.Find(ctx, ports.PostFilter{CreatedSince: since}, ports.PostPage{})
	if err != nil {
		return nil, err
	}

	stats, err := s.postStats(ctx, since)
	if err != nil {
		return nil, err
	}

	return &ports.GetPostsResult{
		Posts:               posts,
		TotalPosts:          stats.TotalPosts,
		LastMonthPosts:      lastMonthPosts,
		LastMonthPostsCount: stats.LastMonthPostsCount,
	}, nil
}

// postStats serves the dashboard counters, preferring the short-TTL cache and
// recomputing from the store on a miss. A cache failure is logged and falls
// back to the store rather than failing the listing.
func (s *PostService) postStats(ctx context.Context, since time.Time) (ports.PostStats, error) {
	if s.stats != nil {
		cached, ok, err := s.stats.GetPostStats(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("post stats cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	total, err := s.posts.Count(ctx, ports.PostFilter{})
	if err != nil {
		return ports.PostStats{}, err
	}
	lastMonthCount, err := s.posts.Count(ctx, ports.PostFilter{CreatedSince: since})
	if err != nil {
		return ports.PostStats{}, err
	}

	stats := ports.PostStats{TotalPosts: total, LastMonthPostsCount: lastMonthCount}
	if s.stats != nil {
		if err := s.stats.SetPostStats(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("post stats cache write failed")
		}
	}
	return stats, nil
}

func (s *PostService) Update(ctx context.Context, caller auth.Claims, postID, userID string, update ports.PostUpdate) (*domain.Post, error) {
	if !caller.IsAdmin || caller.UserID != userID {
		return nil, domain.Forbidden("You are not allowed to update this post")
	}

	updated, err := s.posts.Update(ctx, postID, update)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, domain.NotFound("Post not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, caller auth.Claims, postID, userID string) error {
	if !caller.IsAdmin || caller.UserID != userID {
		return domain.Forbidden("You are not allowed to delete this post")
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return domain.NotFound("Post not found")
		}
		return err
	}
	s.logger.Info().Str("post_id", postID).Msg("post deleted")
	return nil
}

// Bookmark toggles the caller's bookmark on a post. The membership list and
// its counter are written back in a single document update; concurrent
// togglers of the same post still race on the read-modify-write, last write
// winning with a consistent document either way.
func (s *PostService) Bookmark(ctx context.Context, caller auth.Claims, postID string) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, domain.NotFound("post not found!")
		}
		return nil, err
	}

	bookmarks, count, _ := domain.Toggle(post.Bookmarks, post.NumberOfBookmarks, caller.UserID)

	updated, err := s.posts.SetBookmarks(ctx, postID, bookmarks, count)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, domain.NotFound("post not found!")
		}
		return nil, err
	}
	return updated, nil
}

func (s *PostService) MyBookmarks(ctx context.Context, caller auth.Claims, userID string) ([]domain.Post, error) {
	if caller.UserID != userID {
		return nil, domain.Forbidden("You are unauthorized to see bookmarks")
	}
	return s.posts.FindBookmarkedBy(ctx, userID)
}
