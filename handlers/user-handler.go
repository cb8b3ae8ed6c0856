package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"photovault/middleware"
	"photovault/services"
)

// Me returns the authenticated user's profile.
func Me(users *services.UserService) fiber.Handler {
	type profileResponse struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
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

		user, err := users.GetByID(principal.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Database error",
				"data":    nil,
			})
		}
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "error",
				"message": "User not found",
				"data":    nil,
			})
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "User found",
			"data":    profileResponse{ID: user.ID, Email: user.Email, Name: user.Name},
		})
	}
}

// UpdateProfile edits name/email and optionally rotates the password, which
// requires the current one.
func UpdateProfile(users *services.UserService) fiber.Handler {
	type profileData struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
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

		input := new(profileData)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid request body",
				"data":    nil,
			})
		}

		err := users.UpdateProfile(principal.ID, input.Name, input.Email, input.CurrentPassword, input.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWrongPassword):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"status":  "error",
					"message": "Current password is incorrect",
					"data":    nil,
				})
			case errors.Is(err, services.ErrUserExists):
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"status":  "error",
					"message": "Email already taken",
					"data":    nil,
				})
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"status":  "error",
					"message": "User not found",
					"data":    nil,
				})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"status":  "error",
					"message": "Failed to update profile",
					"data":    nil,
				})
			}
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Profile updated",
			"data":    nil,
		})
	}
}
