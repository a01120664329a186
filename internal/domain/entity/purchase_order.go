package entity

import "github.com/shopspring/decimal"

// PurchaseOrderStatus estado de una orden de compra.
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "Pending"
	PurchaseOrderStatusApproved  PurchaseOrderStatus = "Approved"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "Received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "Cancelled"
)

// Valid indica si el estado es uno de los permitidos.
func (s PurchaseOrderStatus) Valid() bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusApproved,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition valida el ciclo Pending→Approved→Received. Cancelar es
// posible desde cualquier estado salvo Received.
func (s PurchaseOrderStatus) CanTransition(to PurchaseOrderStatus) bool {
	switch to {
	case PurchaseOrderStatusApproved:
		return s == PurchaseOrderStatusPending
	case PurchaseOrderStatusReceived:
		return s == PurchaseOrderStatusApproved
	case PurchaseOrderStatusCancelled:
		return s != PurchaseOrderStatusReceived && s != PurchaseOrderStatusCancelled
	}
	return false
}

// PurchaseOrderItem línea de una orden de compra.
type PurchaseOrderItem struct {
	Name      string
	Quantity  int
	Unit      string
	UnitPrice decimal.Decimal
}

// PurchaseOrder orden de compra a proveedor. El ID usa el formato "PO-NNN".
type PurchaseOrder struct {
	Audit
	Supplier     string
	Date         string // ISO YYYY-MM-DD
	DeliveryDate string // ISO YYYY-MM-DD
	Total        decimal.Decimal
	Status       PurchaseOrderStatus
	Items        []PurchaseOrderItem
}

// Clone copia el registro, incluidas las líneas.
func (p *PurchaseOrder) Clone() *PurchaseOrder {
	cp := *p
	cp.Items = append([]PurchaseOrderItem(nil), p.Items...)
	return &cp
}

// ComputeTotal suma las líneas (cantidad × precio unitario).
func (p *PurchaseOrder) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
