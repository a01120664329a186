package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/application/usecase"
)

// CustomerHandler endpoints del módulo de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/v1/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var f dto.CustomerFilterParams
	if err := c.QueryParser(&f); err != nil {
		return badQuery(c, err)
	}
	f.Normalize("firstName")
	return envelope(c, h.uc.List(c.UserContext(), f))
}

// GetByID GET /api/v1/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	return envelope(c, h.uc.GetByID(c.UserContext(), c.Params("id")))
}

// Create POST /api/v1/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Create(c.UserContext(), Actor(c), in))
}

// Update PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Update(c.UserContext(), Actor(c), c.Params("id"), in))
}

// Delete DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	return envelope(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}
