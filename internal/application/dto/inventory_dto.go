package dto

import "github.com/jhoicas/resto-admin-api/internal/domain/entity"

// InventoryItemRequest entrada para crear un artículo de inventario.
// Status no se acepta: es derivado de cantidad y nivel de reorden.
type InventoryItemRequest struct {
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	ReorderLevel int    `json:"reorderLevel"`
}

// UpdateInventoryItemRequest entrada parcial para actualizar un artículo.
type UpdateInventoryItemRequest struct {
	Name         *string `json:"name"`
	SKU          *string `json:"sku"`
	Category     *string `json:"category"`
	Quantity     *int    `json:"quantity"`
	Unit         *string `json:"unit"`
	ReorderLevel *int    `json:"reorderLevel"`
}

// InventoryItemResponse salida de un artículo de inventario.
type InventoryItemResponse struct {
	AuditFields
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	ReorderLevel int    `json:"reorderLevel"`
	Status       string `json:"status"`
}

// NewInventoryItemResponse mapea la entidad a su DTO de salida.
func NewInventoryItemResponse(i *entity.InventoryItem) *InventoryItemResponse {
	if i == nil {
		return nil
	}
	return &InventoryItemResponse{
		AuditFields:  auditOf(i.Audit),
		Name:         i.Name,
		SKU:          i.SKU,
		Category:     i.Category,
		Quantity:     i.Quantity,
		Unit:         i.Unit,
		ReorderLevel: i.ReorderLevel,
		Status:       string(i.Status),
	}
}

// InventoryFilterParams filtros del listado de inventario. Search busca por
// subcadena en nombre y SKU.
type InventoryFilterParams struct {
	PaginationParams
	Category string `query:"category"`
	Status   string `query:"status"`
	Search   string `query:"search"`
}
