package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"photovault/auth"
	"photovault/models"
	"photovault/services"
)

type userResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

func setSessionCookie(c *fiber.Ctx, tokenStr string) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    tokenStr,
		Expires:  time.Now().Add(auth.CookieDuration),
		HTTPOnly: true,
		Secure:   false, // behind TLS termination in production
		SameSite: "Lax",
	})
}

func issueSession(c *fiber.Ctx, authSvc *auth.Service, user *models.User, status int, message string) error {
	tokenStr, err := authSvc.IssueToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to generate token",
			"data":    nil,
		})
	}

	setSessionCookie(c, tokenStr)

	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data": userResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Token: tokenStr,
		},
	})
}

// Register creates a user and signs them in right away.
func Register(users *services.UserService, authSvc *auth.Service) fiber.Handler {
	type registerData struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	return func(c *fiber.Ctx) error {
		input := new(registerData)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid request body",
				"data":    nil,
			})
		}

		user, err := users.Register(input.Email, input.Name, input.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"status":  "error",
					"message": "All fields are required",
					"data":    nil,
				})
			case errors.Is(err, services.ErrUserExists):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"status":  "error",
					"message": "User already exists",
					"data":    nil,
				})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"status":  "error",
					"message": "Failed to register",
					"data":    nil,
				})
			}
		}

		return issueSession(c, authSvc, user, fiber.StatusCreated, "Registration successful")
	}
}

// Login validates credentials and returns a JWT, also set as a cookie for
// browser clients.
func Login(users *services.UserService, authSvc *auth.Service) fiber.Handler {
	type loginData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	return func(c *fiber.Ctx) error {
		input := new(loginData)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid request body",
				"data":    nil,
			})
		}

		user, err := users.Authenticate(input.Email, input.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status":  "error",
					"message": "Invalid email or password",
					"data":    nil,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Database error",
				"data":    nil,
			})
		}

		return issueSession(c, authSvc, user, fiber.StatusOK, "Login successful")
	}
}

// Logout clears the session cookie.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Logout successful",
		"data":    nil,
	})
}
