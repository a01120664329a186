package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/application/usecase"
)

// CustomerGroupHandler endpoints de grupos de clientes.
type CustomerGroupHandler struct {
	uc *usecase.CustomerGroupUseCase
}

func NewCustomerGroupHandler(uc *usecase.CustomerGroupUseCase) *CustomerGroupHandler {
	return &CustomerGroupHandler{uc: uc}
}

// List GET /api/v1/customer-groups
func (h *CustomerGroupHandler) List(c *fiber.Ctx) error {
	var f dto.CustomerGroupFilterParams
	if err := c.QueryParser(&f); err != nil {
		return badQuery(c, err)
	}
	f.Normalize("customerGroupName")
	return envelope(c, h.uc.List(c.UserContext(), f))
}

// GetByID GET /api/v1/customer-groups/:id
func (h *CustomerGroupHandler) GetByID(c *fiber.Ctx) error {
	return envelope(c, h.uc.GetByID(c.UserContext(), c.Params("id")))
}

// Create POST /api/v1/customer-groups
func (h *CustomerGroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Create(c.UserContext(), Actor(c), in))
}

// Update PUT /api/v1/customer-groups/:id
func (h *CustomerGroupHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Update(c.UserContext(), Actor(c), c.Params("id"), in))
}

// Delete DELETE /api/v1/customer-groups/:id
func (h *CustomerGroupHandler) Delete(c *fiber.Ctx) error {
	return envelope(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}
