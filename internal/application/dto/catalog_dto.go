package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// ProductRequest entrada para crear un producto del catálogo.
type ProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Status   string          `json:"status"`
	SKU      string          `json:"sku"`
	Image    string          `json:"image"`
}

// UpdateProductRequest entrada parcial para actualizar un producto.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Status   *string          `json:"status"`
	SKU      *string          `json:"sku"`
	Image    *string          `json:"image"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	AuditFields
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Status   string          `json:"status"`
	SKU      string          `json:"sku"`
	Image    string          `json:"image"`
}

// NewProductResponse mapea la entidad a su DTO de salida.
func NewProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		AuditFields: auditOf(p.Audit),
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Status:      string(p.Status),
		SKU:         p.SKU,
		Image:       p.Image,
	}
}

// ProductFilterParams filtros del listado del catálogo. Search busca por
// subcadena en nombre y SKU.
type ProductFilterParams struct {
	PaginationParams
	Category string `query:"category"`
	Status   string `query:"status"`
	Search   string `query:"search"`
}
