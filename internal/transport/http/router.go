package handlers

import (
	"time"

	"learnplatform/internal/infrastructure/security"
	"learnplatform/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	authHandler *AuthHandler,
	catalogHandler *CatalogHandler,
	progressHandler *ProgressHandler,
	linkHandler *LinkHandler,
	settingsHandler *SettingsHandler,
	limiter *middleware.RateLimiter,
	tm *security.TokenManager,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
		}

		private := api.Group("")
		private.Use(middleware.AuthMiddleware(tm))
		{
			private.GET("/user/profile", authHandler.GetProfile)

			private.GET("/courses", catalogHandler.List)
			private.GET("/courses/:id", catalogHandler.GetOne)
			private.GET("/lessons/:id/quiz", catalogHandler.GetQuiz)
			private.POST("/lessons/:id/quiz", progressHandler.SubmitQuiz)

			private.GET("/progress", progressHandler.GetSummary)

			private.GET("/settings", settingsHandler.Get)
			private.PUT("/settings", settingsHandler.Put)

			private.GET("/students", linkHandler.ListStudents)
			private.POST("/students", limiter.Limit("add_student", 10, 5*time.Minute), linkHandler.AddStudent)
			private.DELETE("/students/:linkId", linkHandler.RemoveStudent)

			private.GET("/requests", linkHandler.ListRequests)
			private.POST("/requests/:id", linkHandler.ResolveRequest)
		}
	}

	return r
}
