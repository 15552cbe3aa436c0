package handler

// Request and response shapes for every route. Field names follow the wire
// contract the web client already speaks: Mongo-style _id, camelCase, ISO
// timestamps.

// --- Auth ---

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password"`
}

type googleRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"                    validate:"omitempty,email"`
	GooglePhotoURL string `json:"googlePhotoURL,omitempty" validate:"omitempty,url"`
}

// --- Users ---

type updateUserRequest struct {
	Username       string `json:"username,omitempty"`
	Email          string `json:"email,omitempty"          validate:"omitempty,email"`
	Password       string `json:"password,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty" validate:"omitempty,url"`
}

type userResponse struct {
	ID             string `json:"_id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	IsAdmin        bool   `json:"isAdmin"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type allUsersResponse struct {
	Users           []userResponse `json:"users"`
	LastMonthsUsers int64          `json:"lastMonthsUsers"`
	TotalUsers      int64          `json:"totalUsers"`
}

// --- Posts ---

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
}

type updatePostRequest struct {
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image,omitempty"`
}

type postResponse struct {
	ID                string   `json:"_id"`
	UserID            string   `json:"userId"`
	Title             string   `json:"title"`
	Content           string   `json:"content"`
	Image             string   `json:"image,omitempty"`
	Category          string   `json:"category,omitempty"`
	Slug              string   `json:"slug"`
	Bookmarks         []string `json:"bookmarks"`
	NumberOfBookmarks int      `json:"numberOfBookmarks"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

type allPostsResponse struct {
	Posts               []postResponse `json:"posts"`
	LastMonthPosts      []postResponse `json:"lastMonthPosts"`
	LastMonthPostsCount int64          `json:"lastMonthPostsCount"`
	TotalPosts          int64          `json:"totalPosts"`
}

type bookmarkedPostsResponse struct {
	Posts []postResponse `json:"posts"`
}

// --- Comments ---

type createCommentRequest struct {
	Content string `json:"content"`
	UserID  string `json:"userId"`
	PostID  string `json:"postId"`
}

type editCommentRequest struct {
	Content string `json:"content"`
}

type commentResponse struct {
	ID            string   `json:"_id"`
	PostID        string   `json:"postId"`
	UserID        string   `json:"userId"`
	Content       string   `json:"content"`
	Likes         []string `json:"likes"`
	NumberOfLikes int      `json:"numberOfLikes"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

type allCommentsResponse struct {
	Comments      []commentResponse `json:"comments"`
	TotalComments int64             `json:"totalComments"`
}
