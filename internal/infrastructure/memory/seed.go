package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// Datos de muestra del panel. Los ids son secuenciales dentro de cada
// colección; el contador de la colección arranca en len(seed).

var seedTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Clave inicial de todo el personal sembrado. Pensada para demo: el flujo de
// actualización de empleados permite cambiarla.
const seedStaffPassword = "admin123"

func seedAudit(id string) entity.Audit {
	return entity.Audit{
		ID:         id,
		Active:     true,
		CreatedBy:  "Admin",
		CreatedOn:  seedTime,
		ModifiedBy: "Admin",
		ModifiedOn: seedTime,
	}
}

func seedCustomerGroups() []*entity.CustomerGroup {
	return []*entity.CustomerGroup{
		{Audit: seedAudit("1"), CustomerGroupName: "VIP", CustomerGroupStatus: entity.GroupStatusActive},
		{Audit: seedAudit("2"), CustomerGroupName: "Corporate Clients", CustomerGroupStatus: entity.GroupStatusActive},
	}
}

func seedCustomers() []*entity.Customer {
	return []*entity.Customer{
		{
			Audit: seedAudit("1"), FirstName: "Elizabeth", LastName: "Baker",
			PhoneNumber: "+91 9123456788", EmailAddress: "elizabeth2@gmail.com",
			Gender: entity.GenderFemale, DateOfBirth: "2000-02-09",
			CustomerGroupID: "1", AmountDue: decimal.NewFromInt(1480),
		},
		{
			Audit: seedAudit("2"), FirstName: "Mark", LastName: "Taylor",
			PhoneNumber: "+91 9556345678", EmailAddress: "taylor09@gmail.com",
			Gender: entity.GenderMale, DateOfBirth: "2001-03-08",
			CustomerGroupID: "2", AmountDue: decimal.NewFromInt(5658),
		},
		{
			Audit: seedAudit("3"), FirstName: "Jackson", LastName: "Clark",
			PhoneNumber: "+91 9123456788", EmailAddress: "elizabeth2@gmail.com",
			Gender: entity.GenderMale, DateOfBirth: "2000-02-09",
			CustomerGroupID: "1", AmountDue: decimal.NewFromInt(1480),
		},
		{
			Audit: seedAudit("4"), FirstName: "Anthony", LastName: "Moore",
			PhoneNumber: "+91 9556345678", EmailAddress: "taylor09@gmail.com",
			Gender: entity.GenderMale, DateOfBirth: "2001-03-08",
			CustomerGroupID: "2", AmountDue: decimal.Zero,
		},
		{
			Audit: seedAudit("5"), FirstName: "Sarah", LastName: "Walker",
			PhoneNumber: "+91 9123456788", EmailAddress: "elizabeth2@gmail.com",
			Gender: entity.GenderFemale, DateOfBirth: "2000-02-09",
			CustomerGroupID: "1", AmountDue: decimal.NewFromInt(1480),
		},
	}
}

func seedOrders() []*entity.Order {
	rows := []struct {
		customer string
		date     string
		total    float64
		status   entity.OrderStatus
		items    int
	}{
		{"John Smith", "2025-04-09", 78.50, entity.OrderStatusCompleted, 3},
		{"Sarah Johnson", "2025-04-09", 125.75, entity.OrderStatusProcessing, 5},
		{"Michael Brown", "2025-04-08", 42.99, entity.OrderStatusCompleted, 2},
		{"Emma Wilson", "2025-04-08", 89.25, entity.OrderStatusCompleted, 4},
		{"David Lee", "2025-04-07", 156.80, entity.OrderStatusCancelled, 6},
		{"Amanda Clark", "2025-04-07", 67.30, entity.OrderStatusProcessing, 3},
		{"Robert Garcia", "2025-04-06", 45.95, entity.OrderStatusCompleted, 2},
		{"Jennifer Lopez", "2025-04-06", 112.45, entity.OrderStatusCompleted, 4},
		{"William Taylor", "2025-04-05", 95.20, entity.OrderStatusProcessing, 5},
		{"Elizabeth Martin", "2025-04-05", 78.60, entity.OrderStatusCompleted, 3},
		{"James Anderson", "2025-04-04", 134.90, entity.OrderStatusCancelled, 6},
		{"Patricia Thomas", "2025-04-04", 56.75, entity.OrderStatusCompleted, 2},
	}
	out := make([]*entity.Order, 0, len(rows))
	for i, r := range rows {
		out = append(out, &entity.Order{
			Audit:        seedAudit(orderID(i + 1)),
			CustomerName: r.customer,
			Date:         r.date,
			Total:        decimal.NewFromFloat(r.total),
			Status:       r.status,
			Items:        r.items,
		})
	}
	return out
}

func seedReservations() []*entity.Reservation {
	rows := []struct {
		customer string
		date     string
		time     string
		guests   int
		status   entity.ReservationStatus
		phone    string
	}{
		{"John Smith", "2025-04-10", "18:30", 4, entity.ReservationStatusConfirmed, "555-123-4567"},
		{"Sarah Johnson", "2025-04-10", "19:00", 2, entity.ReservationStatusConfirmed, "555-234-5678"},
		{"Michael Brown", "2025-04-11", "12:30", 6, entity.ReservationStatusPending, "555-345-6789"},
		{"Emma Wilson", "2025-04-11", "13:00", 3, entity.ReservationStatusConfirmed, "555-456-7890"},
		{"David Lee", "2025-04-12", "19:30", 2, entity.ReservationStatusCancelled, "555-567-8901"},
		{"Amanda Clark", "2025-04-12", "20:00", 4, entity.ReservationStatusConfirmed, "555-678-9012"},
		{"Robert Garcia", "2025-04-13", "18:00", 5, entity.ReservationStatusPending, "555-789-0123"},
		{"Jennifer Lopez", "2025-04-13", "19:00", 2, entity.ReservationStatusConfirmed, "555-890-1234"},
		{"William Taylor", "2025-04-14", "12:00", 3, entity.ReservationStatusPending, "555-901-2345"},
		{"Elizabeth Martin", "2025-04-14", "13:30", 6, entity.ReservationStatusConfirmed, "555-012-3456"},
		{"James Anderson", "2025-04-15", "19:00", 2, entity.ReservationStatusCancelled, "555-123-4567"},
		{"Patricia Thomas", "2025-04-15", "20:00", 4, entity.ReservationStatusConfirmed, "555-234-5678"},
	}
	out := make([]*entity.Reservation, 0, len(rows))
	for i, r := range rows {
		out = append(out, &entity.Reservation{
			Audit:        seedAudit(reservationID(i + 1)),
			CustomerName: r.customer,
			Date:         r.date,
			Time:         r.time,
			Guests:       r.guests,
			Status:       r.status,
			Phone:        r.phone,
		})
	}
	return out
}

func seedInventory() []*entity.InventoryItem {
	rows := []struct {
		name         string
		sku          string
		category     string
		quantity     int
		unit         string
		reorderLevel int
	}{
		{"Coffee Beans (Arabica)", "CB-ARA-001", "Ingredients", 45, "kg", 10},
		{"Coffee Beans (Robusta)", "CB-ROB-002", "Ingredients", 32, "kg", 10},
		{"Milk", "MLK-001", "Ingredients", 18, "L", 20},
		{"Sugar", "SUG-001", "Ingredients", 50, "kg", 15},
		{"Chocolate Syrup", "SYP-CHO-001", "Ingredients", 8, "bottles", 10},
		{"Caramel Syrup", "SYP-CAR-002", "Ingredients", 12, "bottles", 10},
		{"Vanilla Syrup", "SYP-VAN-003", "Ingredients", 5, "bottles", 10},
		{"Paper Cups (12oz)", "CUP-12-001", "Packaging", 620, "pieces", 200},
		{"Paper Cups (16oz)", "CUP-16-002", "Packaging", 148, "pieces", 200},
		{"Lids", "LID-001", "Packaging", 800, "pieces", 200},
		{"Stirrers", "STR-001", "Utensils", 1200, "pieces", 300},
		{"Napkins", "NAP-001", "Utensils", 40, "packs", 20},
	}
	out := make([]*entity.InventoryItem, 0, len(rows))
	for i, r := range rows {
		item := &entity.InventoryItem{
			Audit:        seedAudit(fmt.Sprintf("%d", i+1)),
			Name:         r.name,
			SKU:          r.sku,
			Category:     r.category,
			Quantity:     r.quantity,
			Unit:         r.unit,
			ReorderLevel: r.reorderLevel,
		}
		item.DeriveStatus()
		out = append(out, item)
	}
	return out
}

func seedPurchaseOrders() []*entity.PurchaseOrder {
	po := func(n int, supplier, date, delivery string, status entity.PurchaseOrderStatus, items ...entity.PurchaseOrderItem) *entity.PurchaseOrder {
		p := &entity.PurchaseOrder{
			Audit:        seedAudit(purchaseOrderID(n)),
			Supplier:     supplier,
			Date:         date,
			DeliveryDate: delivery,
			Status:       status,
			Items:        items,
		}
		p.Total = p.ComputeTotal()
		return p
	}
	line := func(name string, qty int, unit string, price float64) entity.PurchaseOrderItem {
		return entity.PurchaseOrderItem{Name: name, Quantity: qty, Unit: unit, UnitPrice: decimal.NewFromFloat(price)}
	}
	return []*entity.PurchaseOrder{
		po(1, "Bean Masters Co.", "2024-04-05", "2024-04-12", entity.PurchaseOrderStatusPending,
			line("Coffee Beans (Arabica)", 25, "kg", 28.50), line("Coffee Beans (Robusta)", 20, "kg", 22.75)),
		po(2, "Dairy Express", "2024-04-03", "2024-04-10", entity.PurchaseOrderStatusReceived,
			line("Milk", 50, "L", 3.75), line("Cream", 20, "L", 8.50)),
		po(3, "Sweet Supplies Inc.", "2024-04-07", "2024-04-14", entity.PurchaseOrderStatusPending,
			line("Sugar", 40, "kg", 12.00), line("Chocolate Syrup", 10, "bottles", 28.00)),
		po(4, "Cup & Pack Solutions", "2024-04-03", "2024-04-15", entity.PurchaseOrderStatusApproved,
			line("Paper Cups (12oz)", 1500, "pieces", 0.35), line("Paper Cups (16oz)", 1000, "pieces", 0.45)),
		po(5, "Flavor Kingdom", "2024-04-08", "2024-04-18", entity.PurchaseOrderStatusPending,
			line("Vanilla Syrup", 15, "bottles", 15.50), line("Caramel Syrup", 15, "bottles", 15.75),
			line("Hazelnut Syrup", 10, "bottles", 16.25)),
		po(6, "Bean Masters Co.", "2024-03-25", "2024-04-02", entity.PurchaseOrderStatusReceived,
			line("Coffee Beans (Arabica)", 30, "kg", 28.50), line("Coffee Beans (Robusta)", 25, "kg", 22.75)),
	}
}

func seedProducts() []*entity.Product {
	rows := []struct {
		name     string
		category string
		price    float64
		status   entity.ProductStatus
		sku      string
	}{
		{"Espresso", "Beverages", 3.50, entity.ProductStatusActive, "BEV-001"},
		{"Cappuccino", "Beverages", 4.50, entity.ProductStatusActive, "BEV-002"},
		{"Latte", "Beverages", 4.75, entity.ProductStatusActive, "BEV-003"},
		{"Americano", "Beverages", 3.25, entity.ProductStatusActive, "BEV-004"},
		{"Chocolate Croissant", "Food", 3.95, entity.ProductStatusActive, "FOOD-001"},
		{"Blueberry Muffin", "Food", 3.75, entity.ProductStatusActive, "FOOD-002"},
		{"Chocolate Chip Cookie", "Snacks", 2.50, entity.ProductStatusActive, "SNACK-001"},
		{"Cheesecake", "Desserts", 5.95, entity.ProductStatusInactive, "DES-001"},
		{"Ceramic Mug", "Merchandise", 12.99, entity.ProductStatusActive, "MERCH-001"},
		{"Travel Tumbler", "Merchandise", 24.99, entity.ProductStatusActive, "MERCH-002"},
		{"Cold Brew", "Beverages", 4.25, entity.ProductStatusActive, "BEV-005"},
		{"Tea Latte", "Beverages", 4.50, entity.ProductStatusInactive, "BEV-006"},
	}
	out := make([]*entity.Product, 0, len(rows))
	for i, r := range rows {
		out = append(out, &entity.Product{
			Audit:    seedAudit(fmt.Sprintf("%d", i+1)),
			Name:     r.name,
			Category: r.category,
			Price:    decimal.NewFromFloat(r.price),
			Status:   r.status,
			SKU:      r.sku,
			Image:    "/placeholder.svg",
		})
	}
	return out
}

func seedCampaigns() []*entity.Campaign {
	return []*entity.Campaign{
		{
			Audit: seedAudit("1"), Name: "Summer Sale Promotion",
			Status: entity.CampaignStatusActive, Type: entity.CampaignTypeEmail,
			Audience: "Loyal Customers", Sent: 1250, Opened: 875, Clicked: 320,
			Date: "2025-04-05",
		},
		{
			Audit: seedAudit("2"), Name: "New Product Launch",
			Status: entity.CampaignStatusScheduled, Type: entity.CampaignTypeEmail,
			Audience: "All Subscribers", Date: "2025-04-15",
		},
		{
			Audit: seedAudit("3"), Name: "Customer Feedback Survey",
			Status: entity.CampaignStatusDraft, Type: entity.CampaignTypeEmail,
			Audience: "Recent Buyers", Date: "2025-04-20",
		},
		{
			Audit: seedAudit("4"), Name: "Inventory Clearance",
			Status: entity.CampaignStatusCompleted, Type: entity.CampaignTypeSMS,
			Audience: "All Customers", Sent: 950, Opened: 740, Clicked: 210,
			Date: "2025-04-01",
		},
	}
}

func seedStaff() []*entity.Staff {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedStaffPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt solo falla con costos fuera de rango
		panic(err)
	}
	rows := []struct {
		name   string
		email  string
		role   string
		status entity.StaffStatus
	}{
		{"Shiva Sai", "shivasai@gmail.com", "Manager", entity.StaffStatusActive},
		{"Arya Varma", "arya@example.com", "Chef", entity.StaffStatusActive},
		{"Priya Desai", "priya@gmail.com", "Waiter", entity.StaffStatusInactive},
		{"Amit Verma", "amit@example.com", "Cashier", entity.StaffStatusActive},
		{"Ravi Malya", "ravi@gmail.com", "Waiter", entity.StaffStatusActive},
		{"Anjali Verma", "anjali@example.com", "Waiter", entity.StaffStatusInactive},
		{"Neha Sharma", "neha@gmail.com", "Chef", entity.StaffStatusActive},
	}
	out := make([]*entity.Staff, 0, len(rows))
	for i, r := range rows {
		out = append(out, &entity.Staff{
			Audit:        seedAudit(fmt.Sprintf("%d", i+1)),
			Name:         r.name,
			Email:        r.email,
			Phone:        "+91 9123456789",
			Role:         r.role,
			Status:       r.status,
			PasswordHash: string(hash),
		})
	}
	return out
}

func seedRoles() []*entity.Role {
	fullAccess := func() []entity.Permission {
		out := make([]entity.Permission, 0, len(panelModules))
		for _, m := range panelModules {
			out = append(out, entity.Permission{Module: m, Create: true, Edit: true, Delete: true, Show: true})
		}
		return out
	}
	readOnly := func(modules ...string) []entity.Permission {
		out := make([]entity.Permission, 0, len(modules))
		for _, m := range modules {
			out = append(out, entity.Permission{Module: m, Show: true})
		}
		return out
	}
	return []*entity.Role{
		{Audit: seedAudit("1"), Name: "Manager", Status: entity.StaffStatusActive, StaffCount: 3, Permissions: fullAccess()},
		{Audit: seedAudit("2"), Name: "Chef", Status: entity.StaffStatusActive, StaffCount: 20,
			Permissions: readOnly("Dashboard", "All Orders", "Inventory")},
		{Audit: seedAudit("3"), Name: "Assistant", Status: entity.StaffStatusInactive, StaffCount: 8,
			Permissions: readOnly("Dashboard")},
		{Audit: seedAudit("4"), Name: "Kitchen Helper", Status: entity.StaffStatusActive, StaffCount: 5,
			Permissions: readOnly("Inventory")},
		{Audit: seedAudit("5"), Name: "Waiter", Status: entity.StaffStatusInactive, StaffCount: 250,
			Permissions: readOnly("Dashboard", "All Orders", "Reservations")},
		{Audit: seedAudit("6"), Name: "Sales Executive", Status: entity.StaffStatusActive, StaffCount: 30,
			Permissions: readOnly("Dashboard", "Customers", "Marketing")},
	}
}

// panelModules módulos del panel sobre los que se definen permisos.
var panelModules = []string{
	"Dashboard",
	"Point of Sale",
	"All Orders",
	"Reservations",
	"Catalog",
	"Inventory",
	"Purchase Orders",
	"Customers",
	"Marketing",
	"Analytics & Reports",
	"Manage Resources",
	"Branches",
	"Multiple Kitchens",
	"Administration",
}
