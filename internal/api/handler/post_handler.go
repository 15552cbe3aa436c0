package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarah-habibi/blog-api/internal/api/metrics"
	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

// PostHandler handles post CRUD, listings, and the bookmark toggle.
type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create publishes a new post. Admin only.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post fields"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /api/post/create [post]
func (h *PostHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.postService.Create(c.Request().Context(), claims, ports.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Image:    req.Image,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// GetPosts is the public listing plus the dashboard aggregates.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        userId      query     string  false  "Filter by author"
// @Param        category    query     string  false  "Filter by category"
// @Param        slug        query     string  false  "Filter by slug"
// @Param        postId      query     string  false  "Filter by id"
// @Param        searchTerm  query     string  false  "Match in title or content"
// @Param        order       query     string  false  "asc or desc"
// @Param        startIndex  query     int     false  "Offset"
// @Param        limit       query     int     false  "Page size"  default(9)
// @Success      200  {object}  allPostsResponse
// @Router       /api/post/getposts [get]
func (h *PostHandler) GetPosts(c echo.Context) error {
	result, err := h.postService.GetPosts(c.Request().Context(), ports.GetPostsQuery{
		UserID:     c.QueryParam("userId"),
		Category:   c.QueryParam("category"),
		Slug:       c.QueryParam("slug"),
		PostID:     c.QueryParam("postId"),
		SearchTerm: c.QueryParam("searchTerm"),
		Order:      c.QueryParam("order"),
		StartIndex: queryInt(c, "startIndex", 0),
		Limit:      queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, allPostsResponse{
		Posts:               toPostsResponse(result.Posts),
		LastMonthPosts:      toPostsResponse(result.LastMonthPosts),
		LastMonthPostsCount: result.LastMonthPostsCount,
		TotalPosts:          result.TotalPosts,
	})
}

// Delete removes a post. The caller must be an admin and the declared owner.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Param        userId  path      string  true  "Owner id"
// @Success      200     {string}  string
// @Failure      403     {object}  map[string]any
// @Failure      404     {object}  map[string]any
// @Router       /api/post/deletepost/{postId}/{userId} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.Request().Context(), claims, c.Param("postId"), c.Param("userId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, "the post has been deleted")
}

// Update edits a post. The caller must be an admin and the declared owner.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        postId  path      string             true  "Post id"
// @Param        userId  path      string             true  "Owner id"
// @Param        body    body      updatePostRequest  true  "Fields to change"
// @Success      200     {object}  postResponse
// @Failure      403     {object}  map[string]any
// @Failure      404     {object}  map[string]any
// @Router       /api/post/updatepost/{postId}/{userId} [put]
func (h *PostHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.postService.Update(c.Request().Context(), claims, c.Param("postId"), c.Param("userId"), ports.PostUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Bookmark toggles the caller's bookmark on a post.
//
// @Summary      Toggle a bookmark
// @Tags         posts
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  postResponse
// @Failure      404     {object}  map[string]any
// @Router       /api/post/bookmarkpost/{postId} [put]
func (h *PostHandler) Bookmark(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	post, err := h.postService.Bookmark(c.Request().Context(), claims, c.Param("postId"))
	if err != nil {
		return err
	}

	metrics.TogglesTotal.WithLabelValues("bookmark", metrics.ToggleAction(contains(post.Bookmarks, claims.UserID))).Inc()
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// MyBookmarks lists the posts the caller has bookmarked.
//
// @Summary      List own bookmarked posts
// @Tags         posts
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  bookmarkedPostsResponse
// @Failure      403     {object}  map[string]any
// @Router       /api/post/mybookmarks/{userId} [get]
func (h *PostHandler) MyBookmarks(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	posts, err := h.postService.MyBookmarks(c.Request().Context(), claims, c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookmarkedPostsResponse{Posts: toPostsResponse(posts)})
}

func contains(members []string, id string) bool {
	for _, m := range members {
		if m == id {
			return true
		}
	}
	return false
}
