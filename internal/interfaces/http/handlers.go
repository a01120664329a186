// Package http expone el panel de administración sobre Fiber: un handler por
// módulo, middlewares de sesión y permisos, y el stream de notificaciones.
//
// Todos los endpoints de negocio responden el sobre uniforme del panel
// (data/message/status/success); sólo los middlewares y los errores de
// parseo responden dto.ErrorResponse.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
)

func badQuery(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_QUERY",
		Message: "parámetros de consulta inválidos: " + err.Error(),
	})
}

func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_BODY",
		Message: "cuerpo de la petición inválido: " + err.Error(),
	})
}

// envelope escribe el sobre con su status como status HTTP.
func envelope[T any](c *fiber.Ctx, res *dto.ResponseModel[T]) error {
	return c.Status(res.Status).JSON(res)
}
