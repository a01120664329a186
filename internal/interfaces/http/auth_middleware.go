package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/pkg/jwt"
)

// Locals keys para la identidad de la sesión en Fiber.
const (
	LocalStaffID   = "staff_id"
	LocalStaffName = "staff_name"
	LocalRole      = "role"
)

// AuthMiddleware valida el Bearer Token JWT y carga identidad y rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		staffID, name, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalStaffID, staffID)
		c.Locals(LocalStaffName, name)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetStaffID devuelve el id del empleado de la sesión.
func GetStaffID(c *fiber.Ctx) string {
	v := c.Locals(LocalStaffID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Actor devuelve el nombre del empleado de la sesión para sellar la
// auditoría. Sin sesión (rutas sin auth en dev) se sella como "Admin".
func Actor(c *fiber.Ctx) string {
	v := c.Locals(LocalStaffName)
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return "Admin"
}
