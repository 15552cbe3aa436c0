package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarah-habibi/blog-api/internal/api/metrics"
	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

// CommentHandler handles comment CRUD and the like toggle.
type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create adds a comment to a post in the caller's name.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      createCommentRequest  true  "Comment fields"
// @Success      200   {object}  commentResponse
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/comment/create [post]
func (h *CommentHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	comment, err := h.commentService.Create(c.Request().Context(), claims, ports.CreateCommentInput{
		PostID:  req.PostID,
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// GetPostComments lists a page of a post's comments, newest first.
//
// @Summary      List a post's comments
// @Tags         comments
// @Produce      json
// @Param        postId      path      string  true   "Post id"
// @Param        startIndex  query     int     false  "Offset"
// @Success      200  {object}  allCommentsResponse
// @Router       /api/comment/getPostComments/{postId} [get]
func (h *CommentHandler) GetPostComments(c echo.Context) error {
	result, err := h.commentService.GetPostComments(c.Request().Context(), c.Param("postId"), queryInt(c, "startIndex", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, allCommentsResponse{
		Comments:      toCommentsResponse(result.Comments),
		TotalComments: result.TotalComments,
	})
}

// Like toggles the caller's like on a comment.
//
// @Summary      Toggle a like
// @Tags         comments
// @Produce      json
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {object}  commentResponse
// @Failure      404        {object}  map[string]any
// @Router       /api/comment/likecomment/{commentId} [put]
func (h *CommentHandler) Like(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	comment, err := h.commentService.Like(c.Request().Context(), claims, c.Param("commentId"))
	if err != nil {
		return err
	}

	metrics.TogglesTotal.WithLabelValues("like", metrics.ToggleAction(contains(comment.Likes, claims.UserID))).Inc()
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Edit rewrites a comment's content. Author only.
//
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        commentId  path      string              true  "Comment id"
// @Param        body       body      editCommentRequest  true  "New content"
// @Success      200        {object}  commentResponse
// @Failure      403        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/comment/editcomment/{commentId} [put]
func (h *CommentHandler) Edit(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req editCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	comment, err := h.commentService.Edit(c.Request().Context(), claims, c.Param("commentId"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Delete removes a comment. Author or admin.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {string}  string
// @Failure      403        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/comment/deletecomment/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), claims, c.Param("commentId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, "Comment has been deleted")
}
