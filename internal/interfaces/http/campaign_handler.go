package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/application/usecase"
)

// CampaignHandler endpoints del módulo de marketing.
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
}

func NewCampaignHandler(uc *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// List GET /api/v1/campaigns
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	var f dto.CampaignFilterParams
	if err := c.QueryParser(&f); err != nil {
		return badQuery(c, err)
	}
	f.NormalizeDesc("date")
	return envelope(c, h.uc.List(c.UserContext(), f))
}

// GetByID GET /api/v1/campaigns/:id
func (h *CampaignHandler) GetByID(c *fiber.Ctx) error {
	return envelope(c, h.uc.GetByID(c.UserContext(), c.Params("id")))
}

// Create POST /api/v1/campaigns
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Create(c.UserContext(), Actor(c), in))
}

// Update PUT /api/v1/campaigns/:id
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	return envelope(c, h.uc.Update(c.UserContext(), Actor(c), c.Params("id"), in))
}

// Delete DELETE /api/v1/campaigns/:id
func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	return envelope(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}
