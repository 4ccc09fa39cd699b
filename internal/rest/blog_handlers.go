package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/velkovsky/blog-portal/internal/blogportal"
	"github.com/velkovsky/blog-portal/internal/revalidate"
)

type BlogHandler struct {
	uc     *blogportal.Manager
	signal revalidate.Signal
	secret string
	log    *slog.Logger
}

func NewBlogHandler(uc *blogportal.Manager, signal revalidate.Signal, secret string, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		signal: signal,
		secret: secret,
		log:    log,
	}
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// writeDomainError maps the domain error taxonomy onto HTTP statuses. The
// body always carries a plain {"error": ...} object; storage details never
// cross the boundary.
func (h *BlogHandler) writeDomainError(c echo.Context, err error) error {
	switch {
	case blogportal.IsValidation(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, blogportal.ErrPostNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, blogportal.ErrSlugExists):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, blogportal.ErrTagNotFound):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "an unknown error occurred")
	}
}

// Posts handles GET /api/v1/posts
// @Summary List posts with their tags
// @Description Returns all posts folded with their tags, most recent first. Posts without tags appear with an empty tag set.
// @Tags posts
// @Produce json
// @Param tagId query int false "Filter by tag ID"
// @Success 200 {array} rest.Post
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *BlogHandler) Posts(c echo.Context) error {
	var req PostsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	posts, err := h.uc.Posts(c.Request().Context(), &blogportal.PostFilter{TagID: req.TagID})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewPosts(posts))
}

// PostBySlug handles GET /api/v1/posts/:slug
// @Summary Get a post by slug
// @Description Exact-match lookup by slug, no normalization. 404 when absent.
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} rest.Post
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/posts/{slug} [get]
func (h *BlogHandler) PostBySlug(c echo.Context) error {
	slug := c.Param("slug")

	post, err := h.uc.PostBySlug(c.Request().Context(), slug)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "blog entry not found"})
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// CreatePost handles POST /api/v1/posts
// @Summary Create a post
// @Description Creates a post and its tag associations in one transaction, then revalidates the listing page.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body rest.CreatePostRequest true "New post"
// @Success 201 {object} map[string]string
// @Failure 400,409,500 {object} map[string]string
// @Router /api/v1/posts [post]
func (h *BlogHandler) CreatePost(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	slug, err := h.uc.CreatePost(c.Request().Context(), blogportal.CreateParams{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		TagIDs:  req.Tags,
		Date:    req.Date,
	})
	if err != nil {
		return h.writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Blog created successfully",
		"slug":    slug,
	})
}

// UpdatePost handles PUT /api/v1/posts/:slug
// @Summary Update a post
// @Description Updates title and content and replaces the tag set wholesale, in one transaction. Revalidates the entry page and the listing.
// @Tags posts
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Param request body rest.UpdatePostRequest true "Changed fields"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/posts/{slug} [put]
func (h *BlogHandler) UpdatePost(c echo.Context) error {
	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	err := h.uc.UpdatePost(c.Request().Context(), blogportal.UpdateParams{
		Slug:    c.Param("slug"),
		Title:   req.Title,
		Content: req.Content,
		TagIDs:  req.Tags,
	})
	if err != nil {
		return h.writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Blog updated successfully"})
}

// DeletePost handles DELETE /api/v1/posts/:slug
// @Summary Delete a post
// @Description Deletes the post and all of its tag associations in one transaction, then revalidates the listing.
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} map[string]string
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/posts/{slug} [delete]
func (h *BlogHandler) DeletePost(c echo.Context) error {
	if err := h.uc.DeletePost(c.Request().Context(), c.Param("slug")); err != nil {
		return h.writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Blog deleted successfully"})
}

// RecordView handles POST /api/v1/posts/:slug/views
// @Summary Record a page view
// @Description Atomically increments the view counter for the slug, creating it at 1 on first view.
// @Tags views
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} rest.ViewCount
// @Failure 500 {object} map[string]string
// @Router /api/v1/posts/{slug}/views [post]
func (h *BlogHandler) RecordView(c echo.Context) error {
	slug := c.Param("slug")

	count, err := h.uc.RecordView(c.Request().Context(), slug)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, ViewCount{Slug: slug, Count: count})
}

// Tags handles GET /api/v1/tags
// @Summary List all tags
// @Description Returns all tags ordered by name, for the editor's tag picker.
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags [get]
func (h *BlogHandler) Tags(c echo.Context) error {
	tags, err := h.uc.Tags(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewTags(tags))
}

// PaperByDate handles GET /api/v1/papers/:date
// @Summary Get the newspaper entry for a date
// @Tags papers
// @Produce json
// @Param date path string true "Calendar day, YYYY-MM-DD"
// @Success 200 {object} rest.Newspaper
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/papers/{date} [get]
func (h *BlogHandler) PaperByDate(c echo.Context) error {
	paper, err := h.uc.PaperByDate(c.Request().Context(), c.Param("date"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if paper == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "newspaper not found"})
	}

	return c.JSON(http.StatusOK, NewNewspaper(*paper))
}

// SavePaper handles PUT /api/v1/papers/:date
// @Summary Create or overwrite the newspaper entry for a date
// @Description Idempotent upsert: one row per date whatever the call count. Revalidates the root listing.
// @Tags papers
// @Accept json
// @Produce json
// @Param date path string true "Calendar day, YYYY-MM-DD"
// @Param request body rest.SavePaperRequest true "Entry payload"
// @Success 200 {object} map[string]string
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/papers/{date} [put]
func (h *BlogHandler) SavePaper(c echo.Context) error {
	var req SavePaperRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	err := h.uc.SavePaper(c.Request().Context(), blogportal.PaperParams{
		Date:    c.Param("date"),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return h.writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Success"})
}

// Revalidate handles POST /api/v1/revalidate
// @Summary Trigger revalidation for a path
// @Description Shared-secret endpoint for external collaborators: on a matching secret, emits the same invalidation signal the write path uses.
// @Tags revalidate
// @Produce json
// @Param secret query string true "Shared secret token"
// @Param path query string true "Logical path to revalidate"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/revalidate [post]
func (h *BlogHandler) Revalidate(c echo.Context) error {
	var req RevalidateRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	if req.Secret != h.secret {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}
	if req.Path == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing path param"})
	}

	if err := h.signal.Revalidate(c.Request().Context(), req.Path); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"revalidated": true,
		"now":         time.Now().UnixMilli(),
	})
}
