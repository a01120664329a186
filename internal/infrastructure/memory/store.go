package memory

import (
	"fmt"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// Store agrupa todas las colecciones del panel ya sembradas. Cada campo
// implementa el puerto de repositorio de su entidad.
type Store struct {
	CustomerGroups *Collection[*entity.CustomerGroup]
	Customers      *Collection[*entity.Customer]
	Orders         *Collection[*entity.Order]
	Reservations   *Collection[*entity.Reservation]
	Inventory      *Collection[*entity.InventoryItem]
	PurchaseOrders *Collection[*entity.PurchaseOrder]
	Products       *Collection[*entity.Product]
	Campaigns      *Collection[*entity.Campaign]
	Staff          *Collection[*entity.Staff]
	Roles          *Collection[*entity.Role]
}

// NewStore construye el almacén con los datos de muestra del panel.
func NewStore(lat Latency) *Store {
	return &Store{
		CustomerGroups: NewCollection(seedCustomerGroups(), nil, lat),
		Customers:      NewCollection(seedCustomers(), nil, lat),
		Orders:         NewCollection(seedOrders(), orderID, lat),
		Reservations:   NewCollection(seedReservations(), reservationID, lat),
		Inventory:      NewCollection(seedInventory(), nil, lat),
		PurchaseOrders: NewCollection(seedPurchaseOrders(), purchaseOrderID, lat),
		Products:       NewCollection(seedProducts(), nil, lat),
		Campaigns:      NewCollection(seedCampaigns(), nil, lat),
		Staff:          NewCollection(seedStaff(), nil, lat),
		Roles:          NewCollection(seedRoles(), nil, lat),
	}
}

// Formatos de id de las colecciones con identificador legible.
func orderID(n int) string         { return fmt.Sprintf("ORD-%03d", n) }
func reservationID(n int) string   { return fmt.Sprintf("RES-%03d", n) }
func purchaseOrderID(n int) string { return fmt.Sprintf("PO-2024-%03d", n) }
