package handler

import (
	"time"

	"github.com/sarah-habibi/blog-api/internal/core/domain"
)

// --- Domain → HTTP response ---

// toUserResponse is the public profile projection: the password hash never
// leaves the service boundary.
func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		IsAdmin:        u.IsAdmin,
		CreatedAt:      isoTime(u.CreatedAt),
		UpdatedAt:      isoTime(u.UpdatedAt),
	}
}

func toUsersResponse(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out
}

func toPostResponse(p *domain.Post) postResponse {
	bookmarks := p.Bookmarks
	if bookmarks == nil {
		bookmarks = []string{}
	}
	return postResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		Title:             p.Title,
		Content:           p.Content,
		Image:             p.Image,
		Category:          p.Category,
		Slug:              p.Slug,
		Bookmarks:         bookmarks,
		NumberOfBookmarks: p.NumberOfBookmarks,
		CreatedAt:         isoTime(p.CreatedAt),
		UpdatedAt:         isoTime(p.UpdatedAt),
	}
}

func toPostsResponse(posts []domain.Post) []postResponse {
	out := make([]postResponse, len(posts))
	for i := range posts {
		out[i] = toPostResponse(&posts[i])
	}
	return out
}

func toCommentResponse(c *domain.Comment) commentResponse {
	likes := c.Likes
	if likes == nil {
		likes = []string{}
	}
	return commentResponse{
		ID:            c.ID,
		PostID:        c.PostID,
		UserID:        c.UserID,
		Content:       c.Content,
		Likes:         likes,
		NumberOfLikes: c.NumberOfLikes,
		CreatedAt:     isoTime(c.CreatedAt),
		UpdatedAt:     isoTime(c.UpdatedAt),
	}
}

func toCommentsResponse(comments []domain.Comment) []commentResponse {
	out := make([]commentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}
	return out
}

func isoTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
