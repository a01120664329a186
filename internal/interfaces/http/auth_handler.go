package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resto-admin-api/internal/application/auth"
	"github.com/jhoicas/resto-admin-api/internal/application/dto"
)

// AuthHandler endpoints de autenticación del panel.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Login(c.UserContext(), in))
}
