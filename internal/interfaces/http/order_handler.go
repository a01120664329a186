package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/application/usecase"
	"github.com/jhoicas/resto-admin-api/internal/domain"
)

// OrderHandler endpoints del módulo de órdenes, incluido el recibo en PDF.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List GET /api/v1/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var f dto.OrderFilterParams
	if err := c.QueryParser(&f); err != nil {
		return badQuery(c, err)
	}
	f.NormalizeDesc("date")
	return envelope(c, h.uc.List(c.UserContext(), f))
}

// GetByID GET /api/v1/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	return envelope(c, h.uc.GetByID(c.UserContext(), c.Params("id")))
}

// Create POST /api/v1/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Create(c.UserContext(), Actor(c), in))
}

// Update PUT /api/v1/orders/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Update(c.UserContext(), Actor(c), c.Params("id"), in))
}

// Delete DELETE /api/v1/orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	return envelope(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}

// Receipt GET /api/v1/orders/:id/receipt
//
// Responde el PDF crudo, no el sobre: el navegador lo descarga directo.
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.uc.Receipt(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NOT_FOUND",
				Message: "orden no encontrada",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "RECEIPT_FAILED",
			Message: "no se pudo generar el recibo",
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo-`+id+`.pdf"`)
	return c.Send(data)
}
