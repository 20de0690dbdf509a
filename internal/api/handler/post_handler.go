package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-api/internal/api/metrics"
	"github.com/blogcraft/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Title      string   `json:"title"      validate:"required"`
	Content    string   `json:"content"    validate:"required"`
	AuthorID   string   `json:"author_id"  validate:"required,len=24,hexadecimal"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

type updatePostRequest struct {
	Title      string   `json:"title"   validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// List handles GET /api/posts with pagination, title search, and
// category/tag filters.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 10)"
// @Param        search    query     string  false  "Case-insensitive title search"
// @Param        category  query     string  false  "Exact category filter"
// @Param        tag       query     string  false  "Exact tag filter"
// @Success      200       {object}  ports.PostPage
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), parseListParams(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Create publishes a new post.
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		Categories: req.Categories,
		Tags:       req.Tags,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, post)
}

// Get returns a single post and records the view.
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Update replaces a post's content.
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Categories: req.Categories,
		Tags:       req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post.
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
