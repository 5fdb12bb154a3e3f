package routes

import (
	"solutions-admin/domain/auth"
	"solutions-admin/domain/cta"
	"solutions-admin/domain/dashboard"
	"solutions-admin/domain/lead"
	"solutions-admin/domain/media"
	"solutions-admin/domain/page"
	"solutions-admin/domain/setting"
	"solutions-admin/domain/video"
	"solutions-admin/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Auth routes (public)
	api.GET("/auth/needs_setup", auth.NeedsSetupHandler)
	api.POST("/auth/setup", auth.SetupHandler)
	api.POST("/auth/login", auth.LoginHandler)
	api.GET("/auth/google", auth.GoogleLoginHandler)
	api.GET("/auth/google/callback", auth.GoogleCallbackHandler)

	// Public lead intake
	api.POST("/leads", lead.SubmitHandler)

	// Everything below requires a valid session
	admin := api.Group("", middleware.AuthMiddleware)

	admin.GET("/auth/me", auth.MeHandler)
	admin.GET("/dashboard/stats", dashboard.StatsHandler)

	// Page routes
	admin.GET("/pages", page.ListHandler)
	admin.POST("/pages", page.SaveHandler)
	admin.GET("/pages/slug/:slug", page.GetBySlugHandler)
	admin.GET("/pages/:id", page.GetHandler)
	admin.DELETE("/pages/:id", page.DeleteHandler)
	admin.POST("/pages/:id/publish", page.PublishHandler)
	admin.POST("/pages/:id/unpublish", page.UnpublishHandler)
	admin.POST("/pages/:id/archive", page.ArchiveHandler)
	admin.POST("/pages/:id/duplicate", page.DuplicateHandler)
	admin.PUT("/pages/:id/video", page.LinkVideoHandler)
	admin.GET("/pages/:id/ctas", cta.ListByPageHandler)

	// Video routes
	admin.GET("/videos", video.ListHandler)
	admin.POST("/videos", video.SaveHandler)
	admin.GET("/videos/:id", video.GetHandler)
	admin.DELETE("/videos/:id", video.DeleteHandler)

	// CTA routes
	admin.POST("/ctas", cta.SaveHandler)
	admin.DELETE("/ctas/:id", cta.DeleteHandler)

	// Media routes
	admin.GET("/media", media.ListHandler)
	admin.POST("/media/upload", media.UploadHandler)
	admin.DELETE("/media/:id", media.DeleteHandler)

	// Lead management
	admin.GET("/leads", lead.ListHandler)
	admin.PUT("/leads/:id/status", lead.UpdateStatusHandler)

	// Settings
	admin.GET("/settings", setting.AllHandler)
	admin.GET("/settings/:key", setting.GetHandler)
	admin.PUT("/settings/:key", setting.SetHandler)
}
