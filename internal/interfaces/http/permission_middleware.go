package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
	"github.com/jhoicas/resto-admin-api/internal/domain/repository"
)

// RequirePermission devuelve un middleware Fiber que verifica la matriz de
// permisos del rol de la sesión sobre un módulo del panel. Debe usarse
// DESPUÉS de AuthMiddleware (necesita el rol en locals).
//
// Comportamiento:
//   - 401 → la sesión no trae rol (token legacy o middleware mal encadenado).
//   - 403 → el rol no habilita la acción sobre el módulo.
//   - 503 → fallo de infraestructura al consultar los roles.
func RequirePermission(roles repository.RoleRepository, module string, action entity.PermissionAction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleName := GetRole(c)
		if roleName == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "rol no encontrado en el token",
			})
		}

		all, err := roles.List(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}

		for _, r := range all {
			if r.Name != roleName {
				continue
			}
			if r.Status != entity.StaffStatusActive {
				break
			}
			if r.Allows(module, action) {
				return c.Next()
			}
			break
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol '" + roleName + "' no tiene permiso sobre '" + module + "'",
		})
	}
}
