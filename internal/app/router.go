package app

import (
	"github.com/gin-gonic/gin"

	"lumina_lms_backend/internal/config"
	"lumina_lms_backend/internal/middleware"
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes: no session required.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}

	// Everything else needs a session; role gating mirrors the
	// role-aware navigation of the UI.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.auth.UpdateProfile)

		// Catalog & enrollment
		authGroup.GET("/courses", c.course.GetCatalog)
		authGroup.GET("/courses/:id", c.course.GetCourse)
		authGroup.GET("/my/courses", c.course.GetMyCourses)
		authGroup.POST("/courses/:id/enroll", c.course.Enroll)
		authGroup.PATCH("/courses/:id/progress", c.course.UpdateProgress)

		// Authoring (instructor; admins pass every role gate)
		authoring := authGroup.Group("/")
		authoring.Use(middleware.RoleMiddleware(model.Instructor))
		{
			authoring.POST("/courses", c.course.CreateCourse)
			authoring.POST("/courses/:id/modules", c.course.AddModule)
			authoring.POST("/courses/:id/modules/:moduleId/lessons", c.course.AddLesson)
			authoring.PATCH("/courses/:id/publish", c.course.SetPublish)
		}

		// Assessment
		authGroup.POST("/submissions", c.assessment.Submit)
		authGroup.GET("/submissions/my", c.assessment.GetMySubmissions)
		grading := authGroup.Group("/")
		grading.Use(middleware.RoleMiddleware(model.Instructor))
		{
			grading.GET("/submissions", c.assessment.GetSubmissions)
			grading.PATCH("/submissions/:id/grade", c.assessment.Grade)
		}

		// Community
		community := authGroup.Group("/community")
		{
			community.GET("/posts", c.community.GetPosts)
			community.POST("/posts", c.community.CreatePost)
			community.POST("/posts/:id/like", c.community.ToggleLike)
			community.POST("/posts/:id/comments", c.community.AddComment)
			community.POST("/posts/:id/comments/:commentId/replies", c.community.AddReply)
			community.GET("/posts/:id/share", c.community.Share)
		}

		// Gamification
		authGroup.GET("/achievements", c.gamification.GetBadges)
		authGroup.GET("/achievements/catalog", c.gamification.GetCatalog)
		authGroup.GET("/achievements/leaderboard", c.gamification.GetLeaderboard)
		authGroup.POST("/achievements/points", c.gamification.AddPoints)

		// Administrative registry
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.GET("/events", c.admin.GetEvents)
			admin.POST("/events", c.admin.AddEvent)
			admin.GET("/certificates", c.admin.GetCertificates)
			admin.POST("/certificates", c.admin.IssueCertificate)
		}
	}
}
