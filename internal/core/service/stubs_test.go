package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sarah-habibi/blog-api/internal/core/domain"
	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

// In-memory fakes for the repository ports, shared by the service tests.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Username != "" {
		u.Username = update.Username
	}
	if update.Email != "" {
		u.Email = update.Email
	}
	if update.ProfilePicture != "" {
		u.ProfilePicture = update.ProfilePicture
	}
	if update.PasswordHash != "" {
		u.PasswordHash = update.PasswordHash
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context, query ports.ListUsersQuery) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if query.SortAsc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if query.StartIndex < len(out) {
		out = out[query.StartIndex:]
	} else {
		out = nil
	}
	if query.Limit > 0 && query.Limit < len(out) {
		out = out[:query.Limit]
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, u := range r.users {
		if !u.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type stubPostRepo struct {
	posts  map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Bookmarks = append([]string(nil), p.Bookmarks...)
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	for _, existing := range r.posts {
		if existing.Title == post.Title || existing.Slug == post.Slug {
			return nil, domain.ErrPostExists
		}
	}
	r.nextID++
	created := clonePost(post)
	created.ID = fmt.Sprintf("post-%d", r.nextID)
	r.posts[created.ID] = clonePost(created)
	return created, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) matches(p *domain.Post, filter ports.PostFilter) bool {
	if filter.UserID != "" && p.UserID != filter.UserID {
		return false
	}
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.Slug != "" && p.Slug != filter.Slug {
		return false
	}
	if filter.PostID != "" && p.ID != filter.PostID {
		return false
	}
	if filter.SearchTerm != "" {
		term := strings.ToLower(filter.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Content), term) {
			return false
		}
	}
	if !filter.CreatedSince.IsZero() && p.CreatedAt.Before(filter.CreatedSince) {
		return false
	}
	return true
}

func (r *stubPostRepo) Find(_ context.Context, filter ports.PostFilter, page ports.PostPage) ([]domain.Post, error) {
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if r.matches(p, filter) {
			out = append(out, *clonePost(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if page.SortAsc {
			return out[i].UpdatedAt.Before(out[j].UpdatedAt)
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if page.StartIndex > 0 {
		if page.StartIndex < len(out) {
			out = out[page.StartIndex:]
		} else {
			out = nil
		}
	}
	if page.Limit > 0 && page.Limit < len(out) {
		out = out[:page.Limit]
	}
	return out, nil
}

func (r *stubPostRepo) Count(_ context.Context, filter ports.PostFilter) (int64, error) {
	var n int64
	for _, p := range r.posts {
		if r.matches(p, filter) {
			n++
		}
	}
	return n, nil
}

func (r *stubPostRepo) Update(_ context.Context, id string, update ports.PostUpdate) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	if update.Title != "" {
		p.Title = update.Title
	}
	if update.Content != "" {
		p.Content = update.Content
	}
	if update.Category != "" {
		p.Category = update.Category
	}
	if update.Image != "" {
		p.Image = update.Image
	}
	p.UpdatedAt = time.Now().UTC()
	return clonePost(p), nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) SetBookmarks(_ context.Context, id string, bookmarks []string, count int) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Bookmarks = append([]string(nil), bookmarks...)
	p.NumberOfBookmarks = count
	return clonePost(p), nil
}

func (r *stubPostRepo) FindBookmarkedBy(_ context.Context, userID string) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range r.posts {
		for _, id := range p.Bookmarks {
			if id == userID {
				out = append(out, *clonePost(p))
				break
			}
		}
	}
	return out, nil
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func cloneComment(c *domain.Comment) *domain.Comment {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Likes = append([]string(nil), c.Likes...)
	return &clone
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	created := cloneComment(comment)
	created.ID = fmt.Sprintf("comment-%d", r.nextID)
	r.comments[created.ID] = cloneComment(created)
	return created, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	return cloneComment(c), nil
}

func (r *stubCommentRepo) FindByPost(_ context.Context, postID string, startIndex, limit int) ([]domain.Comment, error) {
	out := make([]domain.Comment, 0)
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *cloneComment(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if startIndex > 0 {
		if startIndex < len(out) {
			out = out[startIndex:]
		} else {
			out = nil
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubCommentRepo) CountByPost(_ context.Context, postID string) (int64, error) {
	var n int64
	for _, c := range r.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (r *stubCommentRepo) UpdateContent(_ context.Context, id, content string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	c.Content = content
	c.UpdatedAt = time.Now().UTC()
	return cloneComment(c), nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *stubCommentRepo) SetLikes(_ context.Context, id string, likes []string, count int) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	c.Likes = append([]string(nil), likes...)
	c.NumberOfLikes = count
	return cloneComment(c), nil
}

type stubStatsCache struct {
	stats ports.PostStats
	set   bool
	gets  int
	sets  int
}

func (c *stubStatsCache) GetPostStats(_ context.Context) (ports.PostStats, bool, error) {
	c.gets++
	return c.stats, c.set, nil
}

func (c *stubStatsCache) SetPostStats(_ context.Context, stats ports.PostStats) error {
	c.sets++
	c.stats = stats
	c.set = true
	return nil
}
