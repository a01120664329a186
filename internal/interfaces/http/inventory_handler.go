package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/application/usecase"
)

// InventoryHandler endpoints del módulo de inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List GET /api/v1/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var f dto.InventoryFilterParams
	if err := c.QueryParser(&f); err != nil {
		return badQuery(c, err)
	}
	f.Normalize("name")
	return envelope(c, h.uc.List(c.UserContext(), f))
}

// GetByID GET /api/v1/inventory/:id
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	return envelope(c, h.uc.GetByID(c.UserContext(), c.Params("id")))
}

// Create POST /api/v1/inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.InventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Create(c.UserContext(), Actor(c), in))
}

// Update PUT /api/v1/inventory/:id
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Update(c.UserContext(), Actor(c), c.Params("id"), in))
}

// Delete DELETE /api/v1/inventory/:id
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	return envelope(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}
