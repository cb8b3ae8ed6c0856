package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"photovault/auth"
	"photovault/config"
	"photovault/database"
	"photovault/logger"
	"photovault/middleware"
	"photovault/models"
	"photovault/router"
	"photovault/services"
)

func main() {
	environment := config.Get("ENV", "development")
	log := logger.New(environment)

	db, err := database.Connect(config.MustGet("DATABASE_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("error closing the database connection")
		}
	}()

	if err := database.Migrate(db, &models.User{}, &models.Album{}, &models.Photo{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	opts := services.Options{
		EnforceOwnership:   config.Get("ENFORCE_OWNERSHIP", "") == "true",
		CascadePhotoDelete: config.Get("CASCADE_PHOTO_DELETE", "") == "true",
	}

	users := services.NewUserService(db)
	albums := services.NewAlbumService(db, opts)
	photos := services.NewPhotoService(db, opts)

	authSvc := auth.NewService(users,
		config.MustGet("JWT_SECRET"),
		config.Get("APP_URL", "http://localhost:3000"))

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // validator enforces the real 5 MiB cap
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())

	router.SetupRoutes(app, router.Deps{
		Auth:   authSvc,
		Users:  users,
		Albums: albums,
		Photos: photos,
		Log:    log,
	})

	port := config.Get("PORT", "3000")
	go func() {
		log.Info().Str("port", port).Msg("server is listening")
		if err := app.Listen(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("gracefully shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
