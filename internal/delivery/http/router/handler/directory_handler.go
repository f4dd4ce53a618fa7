package handler

import (
	"log/slog"
	"net/http"

	"vhiem/internal/delivery/http/middleware"
	"vhiem/internal/delivery/http/response"
	"vhiem/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for community listing handlers.
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	contentUC   usecase.ContentUsecase
	logger      *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(directoryUC usecase.DirectoryUsecase, contentUC usecase.ContentUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: directoryUC,
		contentUC:   contentUC,
		logger:      logger,
	}
}

// Leaderboard handles the points leaderboard request.
func (h *DirectoryHandler) Leaderboard(c echo.Context) error {
	entries, err := h.directoryUC.Leaderboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Leaderboard retrieved successfully")
}

// ListUsers handles the people directory request.
func (h *DirectoryHandler) ListUsers(c echo.Context) error {
	entries, err := h.directoryUC.ListUsers(c.Request().Context(), middleware.IdentityFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Users retrieved successfully")
}

// SearchUsers handles the display-name search request.
func (h *DirectoryHandler) SearchUsers(c echo.Context) error {
	summaries, err := h.contentUC.SearchUsers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaries, "Search completed successfully")
}
