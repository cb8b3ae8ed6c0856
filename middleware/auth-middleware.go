package middleware

import (
	"github.com/gofiber/fiber/v2"

	"photovault/auth"
)

const principalKey = "principal"

// Protected validates the JWT from the Authorization header or the JWT cookie
// and stores the resolved principal in request locals.
func Protected(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var tokenStr string

		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		} else {
			tokenStr = c.Cookies(auth.CookieName)
		}

		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "You are not authorized!",
				"data":    nil,
			})
		}

		claims, err := authSvc.TokenService().Parse(tokenStr)
		if err != nil || claims.User == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid token",
				"data":    nil,
			})
		}

		principal, err := auth.PrincipalFromToken(*claims.User)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid token",
				"data":    nil,
			})
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// CurrentPrincipal returns the principal stored by Protected.
func CurrentPrincipal(c *fiber.Ctx) (auth.Principal, bool) {
	principal, ok := c.Locals(principalKey).(auth.Principal)
	return principal, ok
}
