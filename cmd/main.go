package main

import (
	"solutions-admin/config"
	"solutions-admin/domain/lead"
	"solutions-admin/domain/media"
	"solutions-admin/pkg/apperrors"
	"solutions-admin/pkg/logger"
	"solutions-admin/pkg/mailer"
	"solutions-admin/pkg/storage"
	"solutions-admin/routes"
	"solutions-admin/utils"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
)

func main() {
	config.InitConfig()

	logger.Init(logger.Config{
		Level:       logger.Level(viper.GetString("LOG_LEVEL")),
		Environment: viper.GetString("ENVIRONMENT"),
		ServiceName: "solutions-admin",
	})
	log := logger.Get()

	config.InitDB()
	defer config.CloseDB()
	config.InitRedis()

	store, err := storage.New()
	if err != nil {
		log.Fatal("Failed to initialize storage", err)
	}
	media.Store = store

	notifier, err := mailer.New()
	if err != nil {
		log.Fatal("Failed to initialize mailer", err)
	}
	lead.Notifier = notifier

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(log)

	e.Use(logger.RequestLoggerMiddleware(log))
	e.Use(logger.RecoveryMiddleware(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{viper.GetString("FRONTEND_URL"), "http://localhost:3000"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Uploaded files are served straight from disk when no bucket is set.
	if local, ok := store.(*storage.LocalStorage); ok {
		e.Static("/uploads", local.Dir())
	}

	routes.RegisterRoutes(e)

	addr := ":" + viper.GetString("PORT")
	log.Info("Starting server", logger.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("Server stopped", err)
	}
}
