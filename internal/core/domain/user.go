package domain

import "time"

// DefaultProfilePicture is applied when an account is created without an avatar.
const DefaultProfilePicture = "https://cdn.pixabay.com/photo/2013/07/13/12/33/man-159847_1280.png"

// User models an account on the platform. PasswordHash holds a bcrypt hash
// from the moment of creation; the plaintext secret is never stored.
type User struct {
	ID             string
	Username       string
	Email          string
	PasswordHash   string
	ProfilePicture string
	IsAdmin        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
