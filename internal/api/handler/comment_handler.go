package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-api/internal/api/metrics"
	"github.com/blogcraft/blog-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	PostID   string `json:"post_id"   validate:"required,len=24,hexadecimal"`
	AuthorID string `json:"author_id" validate:"required,len=24,hexadecimal"`
	Content  string `json:"content"   validate:"required"`
}

// ListByPost returns all comments for a post, oldest first.
func (h *CommentHandler) ListByPost(c echo.Context) error {
	comments, err := h.service.ListByPost(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Create stores a new comment. The target post must exist.
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Create(c.Request().Context(), ports.CreateCommentInput{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, comment)
}

// Delete removes a comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
