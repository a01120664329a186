package entity

import "github.com/shopspring/decimal"

// ProductStatus estado de publicación en el catálogo.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Valid indica si el estado es uno de los permitidos.
func (s ProductStatus) Valid() bool {
	return s == ProductStatusActive || s == ProductStatusInactive
}

// Product artículo del catálogo de venta.
type Product struct {
	Audit
	Name     string
	Category string
	Price    decimal.Decimal
	Status   ProductStatus
	SKU      string
	Image    string
}

// Clone copia el registro.
func (p *Product) Clone() *Product {
	cp := *p
	return &cp
}
