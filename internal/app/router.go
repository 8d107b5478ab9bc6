package app

import (
	"prompt_school_backend/docs"
	"prompt_school_backend/internal/config"
	"prompt_school_backend/internal/middleware"
	"prompt_school_backend/internal/model"
	"prompt_school_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerLearnerRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/identity/guest", c.auth.Guest)

		// Static curriculum. Readable without an account so the landing
		// page can render before identity resolution finishes.
		catalogGroup := public.Group("/catalog")
		{
			catalogGroup.GET("/tutorials", c.catalog.GetTutorials)
			catalogGroup.GET("/tutorials/:id", c.catalog.GetTutorial)
			catalogGroup.GET("/patterns", c.catalog.GetPatterns)
			catalogGroup.GET("/examples", c.catalog.GetExamples)
			catalogGroup.GET("/templates", c.catalog.GetTemplates)
		}
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/user/me", c.user.GetMe)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)

	tutorials := rg.Group("/tutorials")
	{
		tutorials.POST("/:id/select", c.tutorial.SelectTutorial)
		tutorials.POST("/lessons/:lessonId/select", c.tutorial.SelectLesson)
		tutorials.POST("/lessons/:lessonId/complete", c.tutorial.CompleteLesson)
		tutorials.POST("/exercises/:exerciseId/start", c.tutorial.StartExercise)
		tutorials.PUT("/exercises/buffer", c.tutorial.UpdateBuffer)
		tutorials.POST("/exercises/check", c.tutorial.Check)
		tutorials.POST("/exercises/hint", c.tutorial.RevealHint)
		tutorials.POST("/exercises/close", c.tutorial.CloseExercise)
		tutorials.POST("/session/catalog", c.tutorial.BackToCatalog)
		tutorials.GET("/session", c.tutorial.GetSession)
		tutorials.GET("/progress", c.tutorial.GetProgress)
	}

	sync := rg.Group("/sync")
	{
		sync.GET("/profile", c.sync.GetProfile)
		sync.PUT("/profile", c.sync.SaveProfile)
		sync.GET("/learning-entries", c.sync.GetLearningEntries)
		sync.PUT("/learning-entries", c.sync.SaveLearningEntries)
		sync.GET("/workflows", c.sync.GetWorkflows)
		sync.PUT("/workflows", c.sync.SaveWorkflows)
		sync.GET("/prompts", c.sync.GetPrompts)
		sync.PUT("/prompts", c.sync.SavePrompts)
		sync.GET("/device-config", c.sync.GetDeviceConfig)
		sync.PUT("/device-config", c.sync.SaveDeviceConfig)
	}

	rg.POST("/playground/run", c.playground.Run)

	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users/:id", c.user.GetUser)
	}
}
