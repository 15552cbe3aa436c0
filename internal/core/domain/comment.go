package domain

import "time"

// Comment belongs to a post and an author. Likes holds the ids of users that
// liked the comment; NumberOfLikes mirrors its length after every successful
// mutation.
type Comment struct {
	ID            string
	PostID        string
	UserID        string
	Content       string
	Likes         []string
	NumberOfLikes int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
