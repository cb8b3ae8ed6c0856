package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"photovault/middleware"
	"photovault/services"
)

// ListAlbums returns the principal's albums.
func ListAlbums(albums *services.AlbumService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "You are not authorized!",
				"data":    nil,
			})
		}

		result, err := albums.List(principal.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Database error",
				"data":    nil,
			})
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Albums found",
			"data":    fiber.Map{"albums": result},
		})
	}
}

// CreateAlbum creates an album owned by the principal.
func CreateAlbum(albums *services.AlbumService) fiber.Handler {
	type albumData struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	return func(c *fiber.Ctx) error {
		principal, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "You are not authorized!",
				"data":    nil,
			})
		}

		input := new(albumData)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid request body",
				"data":    nil,
			})
		}

		album, err := albums.Create(principal.ID, input.Title, input.Description)
		if err != nil {
			if errors.Is(err, services.ErrTitleRequired) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"status":  "error",
					"message": "Missing required fields",
					"data":    nil,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Failed to create album",
				"data":    nil,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status":  "success",
			"message": "Album created",
			"data":    fiber.Map{"album": album},
		})
	}
}

func albumMutationError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Missing required fields",
			"data":    nil,
		})
	case errors.Is(err, services.ErrAlbumNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": "Album not found",
			"data":    nil,
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  "error",
			"message": "Not allowed",
			"data":    nil,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": fallback,
			"data":    nil,
		})
	}
}

// UpdateAlbum edits title and description.
func UpdateAlbum(albums *services.AlbumService) fiber.Handler {
	type albumData struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	return func(c *fiber.Ctx) error {
		principal, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "You are not authorized!",
				"data":    nil,
			})
		}

		albumID, err := c.ParamsInt("id")
		if err != nil || albumID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Missing albumId",
				"data":    nil,
			})
		}

		input := new(albumData)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid request body",
				"data":    nil,
			})
		}

		if err := albums.Update(principal.ID, uint(albumID), input.Title, input.Description); err != nil {
			return albumMutationError(c, err, "Failed to update album")
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Album updated",
			"data":    nil,
		})
	}
}

// DeleteAlbum removes an album row. Whether its photos go with it is decided
// by the service configuration.
func DeleteAlbum(albums *services.AlbumService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "You are not authorized!",
				"data":    nil,
			})
		}

		albumID, err := c.ParamsInt("id")
		if err != nil || albumID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Missing albumId",
				"data":    nil,
			})
		}

		if err := albums.Delete(principal.ID, uint(albumID)); err != nil {
			return albumMutationError(c, err, "Failed to delete album")
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Album deleted",
			"data":    nil,
		})
	}
}
