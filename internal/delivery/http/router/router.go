// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vhiem/internal/delivery/http/middleware"
	"vhiem/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler   *handler.ProfileHandler
	PostHandler      *handler.PostHandler
	SocialHandler    *handler.SocialHandler
	DirectoryHandler *handler.DirectoryHandler
	MediaHandler     *handler.MediaHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler   *handler.ProfileHandler
	postHandler      *handler.PostHandler
	socialHandler    *handler.SocialHandler
	directoryHandler *handler.DirectoryHandler
	mediaHandler     *handler.MediaHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:   params.ProfileHandler,
		postHandler:      params.PostHandler,
		socialHandler:    params.SocialHandler,
		directoryHandler: params.DirectoryHandler,
		mediaHandler:     params.MediaHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authed := r.authMiddleware.Authenticate
	optional := r.authMiddleware.OptionalAuthenticate

	// Profile routes
	profileGroup := e.Group("/profiles")
	profileGroup.Use(authed)
	{
		profileGroup.POST("", r.profileHandler.CreateProfile)
		profileGroup.GET("/me", r.profileHandler.GetOwnProfile)
		profileGroup.PATCH("/me", r.profileHandler.UpdateProfile)
		profileGroup.PUT("/me/photo", r.profileHandler.SetProfilePhoto)
		profileGroup.DELETE("/me/photo", r.profileHandler.ClearProfilePhoto)
	}

	// Point awards funnel through a single endpoint for the caller.
	e.POST("/points", r.profileHandler.AwardPoints, authed)

	// Content routes; feeds are readable anonymously.
	postGroup := e.Group("/posts")
	{
		postGroup.POST("", r.postHandler.CreatePost, authed)
		postGroup.GET("", r.postHandler.ListPosts, optional)
		postGroup.POST("/:id/comments", r.postHandler.AddComment, authed)
		postGroup.GET("/:id/comments", r.postHandler.ListComments, optional)
		postGroup.POST("/:id/like", r.postHandler.TogglePostLike, authed)
	}

	commentGroup := e.Group("/comments")
	commentGroup.Use(authed)
	{
		commentGroup.POST("/:id/replies", r.postHandler.AddReply)
		commentGroup.POST("/:id/like", r.postHandler.ToggleCommentLike)
	}

	// User directory and social graph
	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.directoryHandler.ListUsers, optional)
		userGroup.GET("/search", r.directoryHandler.SearchUsers)
		userGroup.GET("/:id/profile", r.profileHandler.GetProfileByID, optional)
		userGroup.GET("/:id/follow-counts", r.socialHandler.FollowCounts)
		userGroup.GET("/:id/follow", r.socialHandler.IsFollowing, optional)
		userGroup.POST("/:id/follow", r.socialHandler.Follow, authed)
		userGroup.DELETE("/:id/follow", r.socialHandler.Unfollow, authed)
	}

	e.GET("/leaderboard", r.directoryHandler.Leaderboard)

	// Media upload negotiation
	e.POST("/media/upload-url", r.mediaHandler.GenerateUploadURL, authed)
}
