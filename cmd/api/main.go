package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/resto-admin-api/internal/application/auth"
	"github.com/jhoicas/resto-admin-api/internal/application/notify"
	"github.com/jhoicas/resto-admin-api/internal/application/usecase"
	"github.com/jhoicas/resto-admin-api/internal/domain/repository"
	"github.com/jhoicas/resto-admin-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/resto-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/resto-admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/resto-admin-api/internal/interfaces/http"
	"github.com/jhoicas/resto-admin-api/pkg/config"
	"github.com/jhoicas/resto-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	store := memory.NewStore(memory.LatencyFromConfig(cfg.Latency))

	// Con STORE_DRIVER=postgres los repositorios de clientes y grupos salen
	// del pool; el resto de módulos sigue sobre el almacén sembrado.
	var (
		customerRepo repository.CustomerRepository      = store.Customers
		groupRepo    repository.CustomerGroupRepository = store.CustomerGroups
	)
	if cfg.Store.Driver == "postgres" {
		pool, err := postgres.NewPool(context.Background(), cfg.Store)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		customerRepo = postgres.NewCustomerRepository(pool)
		groupRepo = postgres.NewCustomerGroupRepository(pool)
	}

	hub := notify.NewHub(log)
	gw := usecase.NewGateway(log, hub)
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	groupUC := usecase.NewCustomerGroupUseCase(groupRepo, customerRepo, gw)
	customerUC := usecase.NewCustomerUseCase(customerRepo, groupRepo, gw)
	orderUC := usecase.NewOrderUseCase(store.Orders, receipts, gw)
	reservationUC := usecase.NewReservationUseCase(store.Reservations, gw)
	inventoryUC := usecase.NewInventoryUseCase(store.Inventory, gw)
	purchaseUC := usecase.NewPurchaseOrderUseCase(store.PurchaseOrders, gw)
	productUC := usecase.NewProductUseCase(store.Products, gw)
	campaignUC := usecase.NewCampaignUseCase(store.Campaigns, gw)
	staffUC := usecase.NewStaffUseCase(store.Staff, gw)
	roleUC := usecase.NewRoleUseCase(store.Roles, gw)
	authUC := auth.NewAuthUseCase(store.Staff, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Resto Admin API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		JWTSecret:      cfg.JWT.Secret,
		RoleRepo:       store.Roles,
		Auth:           httpRouter.NewAuthHandler(authUC),
		CustomerGroups: httpRouter.NewCustomerGroupHandler(groupUC),
		Customers:      httpRouter.NewCustomerHandler(customerUC),
		Orders:         httpRouter.NewOrderHandler(orderUC),
		Reservations:   httpRouter.NewReservationHandler(reservationUC),
		Inventory:      httpRouter.NewInventoryHandler(inventoryUC),
		PurchaseOrders: httpRouter.NewPurchaseOrderHandler(purchaseUC),
		Products:       httpRouter.NewProductHandler(productUC),
		Campaigns:      httpRouter.NewCampaignHandler(campaignUC),
		Staff:          httpRouter.NewStaffHandler(staffUC),
		Roles:          httpRouter.NewRoleHandler(roleUC),
		Notifications:  httpRouter.NewNotificationHandler(hub),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("servidor detenido")
}
