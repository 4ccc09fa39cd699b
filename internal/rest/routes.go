package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes builds the echo instance with all API routes and middleware.
func (h *BlogHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)

	api := e.Group("/api/v1")
	api.GET("/posts", h.Posts)
	api.POST("/posts", h.CreatePost)
	api.GET("/posts/:slug", h.PostBySlug)
	api.PUT("/posts/:slug", h.UpdatePost)
	api.DELETE("/posts/:slug", h.DeletePost)
	api.POST("/posts/:slug/views", h.RecordView)
	api.GET("/tags", h.Tags)
	api.GET("/papers/:date", h.PaperByDate)
	api.PUT("/papers/:date", h.SavePaper)
	api.POST("/revalidate", h.Revalidate)

	e.GET("/health", h.handleHealth)

	return e
}

func (h *BlogHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *BlogHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return err
	}
}
