package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{ modelVersion string }

func NewHandler(modelVersion string) *Handler { return &Handler{modelVersion: modelVersion} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":        "ok",
		"model_version": h.modelVersion,
		"time":          time.Now().UTC().Format(time.RFC3339Nano),
	})
}
