package entity

// InventoryStatus estado derivado de existencias.
type InventoryStatus string

const (
	InventoryStatusInStock    InventoryStatus = "In Stock"
	InventoryStatusLowStock   InventoryStatus = "Low Stock"
	InventoryStatusOutOfStock InventoryStatus = "Out of Stock"
)

// InventoryItem insumo o artículo de inventario. Status es derivado de
// Quantity y ReorderLevel; se recalcula en cada mutación de cantidad.
type InventoryItem struct {
	Audit
	Name         string
	SKU          string
	Category     string
	Quantity     int
	Unit         string
	ReorderLevel int
	Status       InventoryStatus
}

// Clone copia el registro.
func (i *InventoryItem) Clone() *InventoryItem {
	cp := *i
	return &cp
}

// DeriveStatus recalcula el estado según cantidad y nivel de reorden.
func (i *InventoryItem) DeriveStatus() {
	switch {
	case i.Quantity <= 0:
		i.Status = InventoryStatusOutOfStock
	case i.Quantity <= i.ReorderLevel:
		i.Status = InventoryStatusLowStock
	default:
		i.Status = InventoryStatusInStock
	}
}
