package dto

import "github.com/jhoicas/resto-admin-api/internal/domain/entity"

// CampaignRequest entrada para crear una campaña. Los contadores de envío
// inician en cero.
type CampaignRequest struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Type     string `json:"type"`
	Audience string `json:"audience"`
	Date     string `json:"date"`
}

// UpdateCampaignRequest entrada parcial para actualizar una campaña.
type UpdateCampaignRequest struct {
	Name     *string `json:"name"`
	Status   *string `json:"status"`
	Type     *string `json:"type"`
	Audience *string `json:"audience"`
	Sent     *int    `json:"sent"`
	Opened   *int    `json:"opened"`
	Clicked  *int    `json:"clicked"`
	Date     *string `json:"date"`
}

// CampaignResponse salida de una campaña.
type CampaignResponse struct {
	AuditFields
	Name     string `json:"name"`
	Status   string `json:"status"`
	Type     string `json:"type"`
	Audience string `json:"audience"`
	Sent     int    `json:"sent"`
	Opened   int    `json:"opened"`
	Clicked  int    `json:"clicked"`
	Date     string `json:"date"`
}

// NewCampaignResponse mapea la entidad a su DTO de salida.
func NewCampaignResponse(c *entity.Campaign) *CampaignResponse {
	if c == nil {
		return nil
	}
	return &CampaignResponse{
		AuditFields: auditOf(c.Audit),
		Name:        c.Name,
		Status:      string(c.Status),
		Type:        string(c.Type),
		Audience:    c.Audience,
		Sent:        c.Sent,
		Opened:      c.Opened,
		Clicked:     c.Clicked,
		Date:        c.Date,
	}
}

// CampaignFilterParams filtros del listado de campañas.
type CampaignFilterParams struct {
	PaginationParams
	Status string `query:"status"`
	Type   string `query:"type"`
	Search string `query:"search"`
}
