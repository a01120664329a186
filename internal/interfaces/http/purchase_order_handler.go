package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/application/usecase"
)

// PurchaseOrderHandler endpoints de órdenes de compra, con su ruta de
// transición de estado separada del update genérico.
type PurchaseOrderHandler struct {
	uc *usecase.PurchaseOrderUseCase
}

func NewPurchaseOrderHandler(uc *usecase.PurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// List GET /api/v1/purchase-orders
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	var f dto.PurchaseOrderFilterParams
	if err := c.QueryParser(&f); err != nil {
		return badQuery(c, err)
	}
	f.NormalizeDesc("date")
	return envelope(c, h.uc.List(c.UserContext(), f))
}

// GetByID GET /api/v1/purchase-orders/:id
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	return envelope(c, h.uc.GetByID(c.UserContext(), c.Params("id")))
}

// Create POST /api/v1/purchase-orders
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Create(c.UserContext(), Actor(c), in))
}

// Update PUT /api/v1/purchase-orders/:id
func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Update(c.UserContext(), Actor(c), c.Params("id"), in))
}

// Transition PATCH /api/v1/purchase-orders/:id/status
func (h *PurchaseOrderHandler) Transition(c *fiber.Ctx) error {
	var in dto.PurchaseOrderTransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Transition(c.UserContext(), Actor(c), c.Params("id"), in))
}

// Delete DELETE /api/v1/purchase-orders/:id
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	return envelope(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}
