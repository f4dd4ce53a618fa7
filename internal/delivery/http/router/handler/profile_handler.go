// Package handler contains the HTTP handlers for the application.
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

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// setPhotoRequest carries the media key for a profile photo replacement.
type setPhotoRequest struct {
	Key string `json:"key" validate:"required"`
}

// CreateProfile handles the profile creation request.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var input *usecase.CreateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.CreateProfile(c.Request().Context(), middleware.IdentityFromContext(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Profile created successfully")
}

// GetOwnProfile handles the request for the caller's own profile. Callers
// without a profile get a successful response with null data.
func (h *ProfileHandler) GetOwnProfile(c echo.Context) error {
	view, err := h.uc.GetOwnProfile(c.Request().Context(), middleware.IdentityFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	if view == nil {
		return response.Success(c, http.StatusOK, nil, "No profile yet")
	}

	return response.Success(c, http.StatusOK, view, "Profile retrieved successfully")
}

// GetProfileByID handles the public profile request for a user.
func (h *ProfileHandler) GetProfileByID(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	view, err := h.uc.GetProfileByUserID(c.Request().Context(), middleware.IdentityFromContext(c), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Profile retrieved successfully")
}

// UpdateProfile handles the sparse profile patch request.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile patch")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), middleware.IdentityFromContext(c), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile updated successfully")
}

// SetProfilePhoto handles replacing the profile photo.
func (h *ProfileHandler) SetProfilePhoto(c echo.Context) error {
	var input *setPhotoRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetProfilePhoto(c.Request().Context(), middleware.IdentityFromContext(c), input.Key); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile photo updated successfully")
}

// ClearProfilePhoto handles removing the profile photo.
func (h *ProfileHandler) ClearProfilePhoto(c echo.Context) error {
	if err := h.uc.ClearProfilePhoto(c.Request().Context(), middleware.IdentityFromContext(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile photo removed successfully")
}

// AwardPoints handles a point-award request for the caller.
func (h *ProfileHandler) AwardPoints(c echo.Context) error {
	var input *usecase.AwardPointsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid award input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.AwardPoints(c.Request().Context(), middleware.IdentityFromContext(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Points awarded successfully")
}
