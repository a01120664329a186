package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// OrderRequest entrada para crear un pedido.
type OrderRequest struct {
	CustomerName string          `json:"customer"`
	Date         string          `json:"date"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	Items        int             `json:"items"`
}

// UpdateOrderRequest entrada parcial para actualizar un pedido.
type UpdateOrderRequest struct {
	CustomerName *string          `json:"customer"`
	Date         *string          `json:"date"`
	Total        *decimal.Decimal `json:"total"`
	Status       *string          `json:"status"`
	Items        *int             `json:"items"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	AuditFields
	CustomerName string          `json:"customer"`
	Date         string          `json:"date"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	Items        int             `json:"items"`
}

// NewOrderResponse mapea la entidad a su DTO de salida.
func NewOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		AuditFields:  auditOf(o.Audit),
		CustomerName: o.CustomerName,
		Date:         o.Date,
		Total:        o.Total,
		Status:       string(o.Status),
		Items:        o.Items,
	}
}

// OrderFilterParams filtros del listado de pedidos. Search busca por
// subcadena en el id y el nombre del cliente.
type OrderFilterParams struct {
	PaginationParams
	Status string `query:"status"`
	Search string `query:"search"`
}
