package handler

import (
	"log/slog"
	"net/http"

	"vhiem/internal/delivery/http/middleware"
	"vhiem/internal/delivery/http/response"
	"vhiem/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SocialHandler holds dependencies for follow-graph handlers.
type SocialHandler struct {
	uc     usecase.SocialUsecase
	logger *slog.Logger
}

// NewSocialHandler is the constructor for SocialHandler, injected by Fx.
func NewSocialHandler(uc usecase.SocialUsecase, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{
		uc:     uc,
		logger: logger,
	}
}

// Follow handles creating a follow edge to the target user.
func (h *SocialHandler) Follow(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	followed, err := h.uc.Follow(c.Request().Context(), middleware.IdentityFromContext(c), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"followed": followed}, "Follow processed successfully")
}

// Unfollow handles removing the follow edge to the target user.
func (h *SocialHandler) Unfollow(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	unfollowed, err := h.uc.Unfollow(c.Request().Context(), middleware.IdentityFromContext(c), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"unfollowed": unfollowed}, "Unfollow processed successfully")
}

// IsFollowing handles the follow-state query for the caller.
func (h *SocialHandler) IsFollowing(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	following, err := h.uc.IsFollowing(c.Request().Context(), middleware.IdentityFromContext(c), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_following": following}, "Follow state retrieved successfully")
}

// FollowCounts handles the follower/following totals query for a user.
func (h *SocialHandler) FollowCounts(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	counts, err := h.uc.FollowCounts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts, "Follow counts retrieved successfully")
}
