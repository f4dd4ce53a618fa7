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

// PostHandler holds dependencies for post, comment and reaction handlers.
type PostHandler struct {
	contentUC  usecase.ContentUsecase
	reactionUC usecase.ReactionUsecase
	logger     *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(contentUC usecase.ContentUsecase, reactionUC usecase.ReactionUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		contentUC:  contentUC,
		reactionUC: reactionUC,
		logger:     logger,
	}
}

// CreatePost handles the post creation request.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var input *usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.contentUC.CreatePost(c.Request().Context(), middleware.IdentityFromContext(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// ListPosts handles the feed request.
func (h *PostHandler) ListPosts(c echo.Context) error {
	views, err := h.contentUC.ListRecentPosts(c.Request().Context(), middleware.IdentityFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Posts retrieved successfully")
}

// AddComment handles commenting on a post.
func (h *PostHandler) AddComment(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post id")
	}

	var input *usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.contentUC.AddComment(c.Request().Context(), middleware.IdentityFromContext(c), postID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment created successfully")
}

// AddReply handles replying to a comment.
func (h *PostHandler) AddReply(c echo.Context) error {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment id")
	}

	var input *usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	reply, err := h.contentUC.AddReply(c.Request().Context(), middleware.IdentityFromContext(c), commentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reply, "Reply created successfully")
}

// ListComments handles the comment thread request for a post.
func (h *PostHandler) ListComments(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post id")
	}

	views, err := h.contentUC.ListPostComments(c.Request().Context(), middleware.IdentityFromContext(c), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Comments retrieved successfully")
}

// TogglePostLike handles the like toggle on a post.
func (h *PostHandler) TogglePostLike(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post id")
	}

	liked, err := h.reactionUC.TogglePostLike(c.Request().Context(), middleware.IdentityFromContext(c), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked}, "Like toggled successfully")
}

// ToggleCommentLike handles the like toggle on a comment.
func (h *PostHandler) ToggleCommentLike(c echo.Context) error {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment id")
	}

	liked, err := h.reactionUC.ToggleCommentLike(c.Request().Context(), middleware.IdentityFromContext(c), commentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked}, "Like toggled successfully")
}
