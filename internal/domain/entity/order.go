package entity

import "github.com/shopspring/decimal"

// OrderStatus estado de un pedido.
type OrderStatus string

const (
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid indica si el estado es uno de los permitidos.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusCompleted || s == OrderStatusProcessing || s == OrderStatusCancelled
}

// Order pedido del punto de venta. El ID usa el formato "ORD-NNN".
type Order struct {
	Audit
	CustomerName string
	Date         string // ISO YYYY-MM-DD
	Total        decimal.Decimal
	Status       OrderStatus
	Items        int // cantidad de líneas del pedido
}

// Clone copia el registro.
func (o *Order) Clone() *Order {
	cp := *o
	return &cp
}
