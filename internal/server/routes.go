package server

import (
	"devconnect-service/internal/auth"
	"devconnect-service/internal/config"
	"devconnect-service/internal/feed"
	"devconnect-service/internal/middleware"
	"devconnect-service/internal/request"
	"devconnect-service/internal/user"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	limiter *middleware.RateLimiter,
	tokenStore *auth.TokenStore,
	authHandler *auth.AuthHandler,
	userHandler *user.UserHandler,
	requestHandler *request.RequestHandler,
	feedHandler *feed.FeedHandler,
) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	public.Use(limiter.ByIP(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	{
		authGroup := public.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	// Protected routes (require JWT authentication)
	protected := router.Group("/api/v1")
	protected.Use(
		middleware.Auth(cfg.JWT.Secret, tokenStore),
		limiter.ByUser(cfg.RateLimit.Requests, cfg.RateLimit.Window),
	)
	{
		protected.POST("/auth/logout", authHandler.Logout)

		profile := protected.Group("/profile")
		{
			profile.GET("", userHandler.GetProfile)
			profile.PATCH("", userHandler.UpdateProfile)
			profile.PUT("/password", userHandler.ChangePassword)
			profile.POST("/photo", userHandler.UploadPhoto)
		}

		requests := protected.Group("/requests")
		{
			requests.POST("/send/:status/:userId", requestHandler.Send)
			requests.POST("/review/:status/:requestId", requestHandler.Review)
		}

		userGroup := protected.Group("/user")
		{
			userGroup.GET("/connections", requestHandler.Connections)
			userGroup.GET("/requests/received", requestHandler.Received)
			userGroup.GET("/requests/pending", requestHandler.Pending)
			userGroup.GET("/feed", feedHandler.GetFeed)
		}
	}
}
