package handler

import (
	"log/slog"
	"net/http"

	"vhiem/internal/delivery/http/response"
	"vhiem/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler holds dependencies for media upload handlers.
type MediaHandler struct {
	uc     usecase.MediaUsecase
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		uc:     uc,
		logger: logger,
	}
}

// GenerateUploadURL handles upload negotiation. The client PUTs the object
// to the returned URL and then submits the key with its post or profile.
func (h *MediaHandler) GenerateUploadURL(c echo.Context) error {
	target, err := h.uc.GenerateUploadURL(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, target, "Upload URL generated successfully")
}
