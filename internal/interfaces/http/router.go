package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
	"github.com/jhoicas/resto-admin-api/internal/domain/repository"
)

// Módulos del panel, tal como los nombra la matriz de permisos de los roles.
const (
	moduleOrders       = "All Orders"
	moduleReservations = "Reservations"
	moduleCatalog      = "Catalog"
	moduleInventory    = "Inventory"
	modulePurchases    = "Purchase Orders"
	moduleCustomers    = "Customers"
	moduleMarketing    = "Marketing"
	moduleAdmin        = "Administration"
)

// RouterDeps dependencias del router.
type RouterDeps struct {
	JWTSecret string
	RoleRepo  repository.RoleRepository

	Auth           *AuthHandler
	CustomerGroups *CustomerGroupHandler
	Customers      *CustomerHandler
	Orders         *OrderHandler
	Reservations   *ReservationHandler
	Inventory      *InventoryHandler
	PurchaseOrders *PurchaseOrderHandler
	Products       *ProductHandler
	Campaigns      *CampaignHandler
	Staff          *StaffHandler
	Roles          *RoleHandler
	Notifications  *NotificationHandler
}

// crudHandler contrato común de los handlers de entidad.
type crudHandler interface {
	List(*fiber.Ctx) error
	GetByID(*fiber.Ctx) error
	Create(*fiber.Ctx) error
	Update(*fiber.Ctx) error
	Delete(*fiber.Ctx) error
}

// registerCRUD registra las cinco rutas estándar de una entidad, cada una
// detrás del permiso que le corresponde en la matriz del rol.
func registerCRUD(r fiber.Router, roles repository.RoleRepository, module string, h crudHandler) {
	r.Get("/", RequirePermission(roles, module, entity.ActionShow), h.List)
	r.Get("/:id", RequirePermission(roles, module, entity.ActionShow), h.GetByID)
	r.Post("/", RequirePermission(roles, module, entity.ActionCreate), h.Create)
	r.Put("/:id", RequirePermission(roles, module, entity.ActionEdit), h.Update)
	r.Delete("/:id", RequirePermission(roles, module, entity.ActionDelete), h.Delete)
}

// Router registra todas las rutas del panel sobre la app Fiber.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")
	v1.Post("/auth/login", deps.Auth.Login)

	protected := v1.Group("", AuthMiddleware(deps.JWTSecret))
	protected.Get("/notifications/stream", deps.Notifications.Stream)

	registerCRUD(protected.Group("/customer-groups"), deps.RoleRepo, moduleCustomers, deps.CustomerGroups)
	registerCRUD(protected.Group("/customers"), deps.RoleRepo, moduleCustomers, deps.Customers)

	orders := protected.Group("/orders")
	registerCRUD(orders, deps.RoleRepo, moduleOrders, deps.Orders)
	orders.Get("/:id/receipt", RequirePermission(deps.RoleRepo, moduleOrders, entity.ActionShow), deps.Orders.Receipt)

	registerCRUD(protected.Group("/reservations"), deps.RoleRepo, moduleReservations, deps.Reservations)
	registerCRUD(protected.Group("/inventory"), deps.RoleRepo, moduleInventory, deps.Inventory)

	purchases := protected.Group("/purchase-orders")
	registerCRUD(purchases, deps.RoleRepo, modulePurchases, deps.PurchaseOrders)
	purchases.Patch("/:id/status", RequirePermission(deps.RoleRepo, modulePurchases, entity.ActionEdit), deps.PurchaseOrders.Transition)

	registerCRUD(protected.Group("/products"), deps.RoleRepo, moduleCatalog, deps.Products)
	registerCRUD(protected.Group("/campaigns"), deps.RoleRepo, moduleMarketing, deps.Campaigns)
	registerCRUD(protected.Group("/staff"), deps.RoleRepo, moduleAdmin, deps.Staff)
	registerCRUD(protected.Group("/roles"), deps.RoleRepo, moduleAdmin, deps.Roles)
}
