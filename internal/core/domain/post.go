package domain

import (
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultPostImage is the banner used when a post is created without one.
	DefaultPostImage = "https://www.shutterstock.com/shutterstock/photos/551729392/display_1500/stock-photo-technology-concept-banner-blog-551729392.jpg"

	// DefaultCategory groups posts that were created without a category.
	DefaultCategory = "uncategorized"
)

// Post is a blog article authored by an admin. Bookmarks holds the ids of
// users that bookmarked the post; NumberOfBookmarks mirrors its length after
// every successful mutation.
type Post struct {
	ID                string
	UserID            string
	Title             string
	Content           string
	Image             string
	Category          string
	Slug              string
	Bookmarks         []string
	NumberOfBookmarks int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

var slugStrip = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// Slugify derives the URL slug from a post title: spaces become hyphens, the
// result is lowercased and every character outside [a-zA-Z0-9-] is dropped.
func Slugify(title string) string {
	slug := strings.Join(strings.Split(title, " "), "-")
	slug = strings.ToLower(slug)
	return slugStrip.ReplaceAllString(slug, "")
}
