package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"

	"photovault/auth"
	handler "photovault/handlers"
	"photovault/middleware"
	"photovault/services"
)

// Deps is everything the routes need.
type Deps struct {
	Auth   *auth.Service
	Users  *services.UserService
	Albums *services.AlbumService
	Photos *services.PhotoService
	Log    zerolog.Logger
}

func SetupRoutes(app *fiber.App, deps Deps) {
	api := app.Group("/api", logger.New())
	api.Get("/hello", handler.Hello)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/register", handler.Register(deps.Users, deps.Auth))
	authGroup.Post("/login", handler.Login(deps.Users, deps.Auth))
	authGroup.Post("/logout", handler.Logout)

	// Everything below requires a valid session
	protected := api.Group("/", middleware.Protected(deps.Auth))

	// User
	user := protected.Group("/user")
	user.Get("/me", handler.Me(deps.Users))
	user.Put("/profile", handler.UpdateProfile(deps.Users))

	// Albums
	albums := protected.Group("/albums")
	albums.Get("/", handler.ListAlbums(deps.Albums))
	albums.Post("/", handler.CreateAlbum(deps.Albums))
	albums.Put("/:id", handler.UpdateAlbum(deps.Albums))
	albums.Delete("/:id", handler.DeleteAlbum(deps.Albums))
	albums.Get("/:id/photos", handler.ListPhotos(deps.Photos))
	albums.Post("/:id/photos", handler.UploadPhoto(deps.Photos, deps.Log))

	// Photos
	photos := protected.Group("/photos")
	photos.Get("/:id/data", handler.PhotoData(deps.Photos))
	photos.Delete("/:id", handler.DeletePhoto(deps.Photos))
}
