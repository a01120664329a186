package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// PurchaseOrderItemDTO línea de una orden de compra.
type PurchaseOrderItemDTO struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// PurchaseOrderRequest entrada para crear una orden de compra. El total se
// calcula de las líneas; el estado inicial siempre es Pending.
type PurchaseOrderRequest struct {
	Supplier     string                 `json:"supplier"`
	Date         string                 `json:"date"`
	DeliveryDate string                 `json:"deliveryDate"`
	Items        []PurchaseOrderItemDTO `json:"items"`
}

// UpdatePurchaseOrderRequest entrada parcial para actualizar una orden de
// compra. El estado se cambia solo vía transición.
type UpdatePurchaseOrderRequest struct {
	Supplier     *string                `json:"supplier"`
	Date         *string                `json:"date"`
	DeliveryDate *string                `json:"deliveryDate"`
	Items        []PurchaseOrderItemDTO `json:"items"`
}

// PurchaseOrderTransitionRequest cambio de estado de una orden de compra.
type PurchaseOrderTransitionRequest struct {
	Status string `json:"status"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	AuditFields
	Supplier     string                 `json:"supplier"`
	Date         string                 `json:"date"`
	DeliveryDate string                 `json:"deliveryDate"`
	Total        decimal.Decimal        `json:"total"`
	Status       string                 `json:"status"`
	Items        []PurchaseOrderItemDTO `json:"items"`
}

// NewPurchaseOrderResponse mapea la entidad a su DTO de salida.
func NewPurchaseOrderResponse(p *entity.PurchaseOrder) *PurchaseOrderResponse {
	if p == nil {
		return nil
	}
	items := make([]PurchaseOrderItemDTO, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, PurchaseOrderItemDTO{
			Name:      it.Name,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
		})
	}
	return &PurchaseOrderResponse{
		AuditFields:  auditOf(p.Audit),
		Supplier:     p.Supplier,
		Date:         p.Date,
		DeliveryDate: p.DeliveryDate,
		Total:        p.Total,
		Status:       string(p.Status),
		Items:        items,
	}
}

// PurchaseOrderFilterParams filtros del listado de órdenes de compra.
// Search busca por subcadena en el id y el proveedor.
type PurchaseOrderFilterParams struct {
	PaginationParams
	Status string `query:"status"`
	Search string `query:"search"`
}
