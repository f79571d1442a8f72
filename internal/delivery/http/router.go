package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gdugdh24/roommate-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/roommate-backend/internal/delivery/http/middleware"
)

type Router struct {
	discoverHandler *handler.DiscoverHandler
	profileHandler  *handler.ProfileHandler
	requestHandler  *handler.RequestHandler
	authMiddleware  *middleware.AuthMiddleware
	log             *zap.Logger
}

func NewRouter(
	discoverHandler *handler.DiscoverHandler,
	profileHandler *handler.ProfileHandler,
	requestHandler *handler.RequestHandler,
	authMiddleware *middleware.AuthMiddleware,
	log *zap.Logger,
) *Router {
	return &Router{
		discoverHandler: discoverHandler,
		profileHandler:  profileHandler,
		requestHandler:  requestHandler,
		authMiddleware:  authMiddleware,
		log:             log,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(r.log),
		middleware.Recovery(r.log),
	)

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/lease-options", r.profileHandler.LeaseOptions)

		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			discover := protected.Group("/discover")
			{
				discover.GET("", r.discoverHandler.Discover)
				discover.GET("/:user_id/compatibility", r.discoverHandler.Compatibility)
			}

			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.DELETE("/me", r.profileHandler.DeleteMyProfile)
				profile.POST("/complete-onboarding", r.profileHandler.CompleteOnboarding)
				profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}

			requests := protected.Group("/requests")
			{
				requests.POST("", r.requestHandler.Send)
				requests.POST("/:request_id/respond", r.requestHandler.Respond)
				requests.GET("/with/:user_id", r.requestHandler.Relationship)
				requests.GET("/pending", r.requestHandler.Pending)
				requests.GET("/incoming", r.requestHandler.Incoming)
			}

			protected.GET("/matches", r.requestHandler.Matches)
		}
	}

	return router
}
