package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quickcourt/quickcourt/internal/delivery/http/response"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
)

func CheckRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(constant.JwtFieldRole).(string)
		if !ok {
			err := failure.Unauthorized("role information not found")

			return response.WithError(c, err)
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		err := failure.Forbidden("insufficient permissions")

		return response.WithError(c, err)
	}
}

// AdminOnly restricts a route to the admin role. It reads the role set by
// Jwt, so routes must mount Jwt before it.
func AdminOnly() fiber.Handler {
	return CheckRole(constant.UserRoleAdmin)
}

// OwnerOrAdmin restricts a route to facility owners and admins. It reads the
// role set by Jwt, so routes must mount Jwt before it.
func OwnerOrAdmin() fiber.Handler {
	return CheckRole(constant.UserRoleOwner, constant.UserRoleAdmin)
}
