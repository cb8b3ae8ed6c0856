package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"photovault/middleware"
	"photovault/services"
	"photovault/upload"
)

// ListPhotos returns an album's photos without payload bytes.
func ListPhotos(photos *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		albumID, err := c.ParamsInt("id")
		if err != nil || albumID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Missing albumId",
				"data":    nil,
			})
		}

		result, err := photos.List(uint(albumID))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Database error",
				"data":    nil,
			})
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Photos found",
			"data":    fiber.Map{"photos": result},
		})
	}
}

// UploadPhoto accepts a multipart upload (field "file", plus "albumId" and an
// optional "caption"), runs it through the validator, and stores the bytes.
func UploadPhoto(photos *services.PhotoService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "You are not authorized!",
				"data":    nil,
			})
		}

		file, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": upload.ErrNoFile.Error(),
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

		contentType, err := upload.Validate(file.Header.Get("Content-Type"), file.Size)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
				"data":    nil,
			})
		}

		blob, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Error opening the file",
				"data":    nil,
			})
		}
		defer blob.Close()

		data, err := io.ReadAll(blob)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Error reading the file",
				"data":    nil,
			})
		}

		// The declared type is trusted for the accept decision; a magic-byte
		// mismatch is only worth a log line.
		if sniffed := upload.Sniff(data); sniffed != "" && sniffed != contentType {
			log.Warn().
				Str("declared", contentType).
				Str("sniffed", sniffed).
				Uint("user_id", principal.ID).
				Msg("upload content type mismatch")
		}

		photoID, err := photos.Create(uint(albumID), principal.ID, data, contentType, c.FormValue("caption"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Failed to upload file",
				"data":    nil,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status":  "success",
			"message": "Successfully uploaded the file",
			"data":    fiber.Map{"photoId": photoID},
		})
	}
}

// PhotoData streams a photo's bytes with long-lived cache headers.
func PhotoData(photos *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photoID, err := c.ParamsInt("id")
		if err != nil || photoID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Missing photoId",
				"data":    nil,
			})
		}

		photo, err := photos.Get(uint(photoID))
		if err != nil {
			if errors.Is(err, services.ErrPhotoNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"status":  "error",
					"message": "Photo not found",
					"data":    nil,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Database error",
				"data":    nil,
			})
		}

		c.Set(fiber.HeaderContentType, photo.ServedContentType())
		c.Set(fiber.HeaderContentDisposition, "inline")
		c.Set(fiber.HeaderCacheControl, "public, max-age=31536000")
		return c.Send(photo.Data)
	}
}

// DeletePhoto removes a photo row.
func DeletePhoto(photos *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "You are not authorized!",
				"data":    nil,
			})
		}

		photoID, err := c.ParamsInt("id")
		if err != nil || photoID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Missing photoId",
				"data":    nil,
			})
		}

		if err := photos.Delete(principal.ID, uint(photoID)); err != nil {
			switch {
			case errors.Is(err, services.ErrPhotoNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"status":  "error",
					"message": "Photo not found",
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
					"message": "Failed to delete photo",
					"data":    nil,
				})
			}
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Photo deleted",
			"data":    nil,
		})
	}
}
