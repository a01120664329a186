package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/application/auth"
	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/application/notify"
	"github.com/jhoicas/resto-admin-api/internal/application/usecase"
	"github.com/jhoicas/resto-admin-api/internal/infrastructure/memory"
	"github.com/jhoicas/resto-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/resto-admin-api/pkg/config"
	"github.com/jhoicas/resto-admin-api/pkg/logger"
	"github.com/jhoicas/resto-admin-api/pkg/metrics"
)

// newTestApp monta la app completa sobre el almacén en memoria sembrado, igual
// que el arranque real pero sin latencia simulada.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.NewStore(memory.Latency{})
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	hub := notify.NewHub(log)
	gw := usecase.NewGateway(log, hub)
	jwtCfg := config.JWTConfig{Secret: testSecret, Expiration: 60, Issuer: "resto-admin"}

	deps := RouterDeps{
		JWTSecret:      jwtCfg.Secret,
		RoleRepo:       store.Roles,
		Auth:           NewAuthHandler(auth.NewAuthUseCase(store.Staff, jwtCfg)),
		CustomerGroups: NewCustomerGroupHandler(usecase.NewCustomerGroupUseCase(store.CustomerGroups, store.Customers, gw)),
		Customers:      NewCustomerHandler(usecase.NewCustomerUseCase(store.Customers, store.CustomerGroups, gw)),
		Orders:         NewOrderHandler(usecase.NewOrderUseCase(store.Orders, pdf.NewReceiptGenerator("Resto Admin"), gw)),
		Reservations:   NewReservationHandler(usecase.NewReservationUseCase(store.Reservations, gw)),
		Inventory:      NewInventoryHandler(usecase.NewInventoryUseCase(store.Inventory, gw)),
		PurchaseOrders: NewPurchaseOrderHandler(usecase.NewPurchaseOrderUseCase(store.PurchaseOrders, gw)),
		Products:       NewProductHandler(usecase.NewProductUseCase(store.Products, gw)),
		Campaigns:      NewCampaignHandler(usecase.NewCampaignUseCase(store.Campaigns, gw)),
		Staff:          NewStaffHandler(usecase.NewStaffUseCase(store.Staff, gw)),
		Roles:          NewRoleHandler(usecase.NewRoleUseCase(store.Roles, gw)),
		Notifications:  NewNotificationHandler(hub),
	}

	app := fiber.New()
	Router(app, deps)
	return app
}

// login autentica contra la app y devuelve el token de sesión.
func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	body, err := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var res dto.ResponseModel[*dto.LoginResponse]
	require.NoError(t, json.Unmarshal(raw, &res))
	require.True(t, res.Success)
	require.NotEmpty(t, res.Data.Token)
	return res.Data.Token
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_RutasProtegidasExigenSesion(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_LoginYListadoDeClientes(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "shivasai@gmail.com", "admin123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers?pageSize=3", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var res dto.ResponseModel[*dto.PaginatedResponse[*dto.CustomerResponse]]
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.True(t, res.Success)
	assert.Len(t, res.Data.Items, 3)
	assert.Equal(t, 5, res.Data.TotalCount)
}

func TestRouter_ElActorDelTokenSellaLaAuditoria(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "shivasai@gmail.com", "admin123")

	body := []byte(`{"customerGroupName":"Frequent Diners"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customer-groups", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var res dto.ResponseModel[*dto.CustomerGroupResponse]
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, "Shiva Sai", res.Data.CreatedBy)
}

func TestRouter_ReciboDeOrdenDescargaPDF(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "shivasai@gmail.com", "admin123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-001/receipt", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRouter_OrdenesListanPorFechaDescendente(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "shivasai@gmail.com", "admin123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var res dto.ResponseModel[*dto.PaginatedResponse[*dto.OrderResponse]]
	require.NoError(t, json.Unmarshal(raw, &res))
	require.NotEmpty(t, res.Data.Items)

	// Sin dirección explícita el listado arranca con lo más reciente.
	assert.Equal(t, "ORD-001", res.Data.Items[0].ID)
	assert.Equal(t, "2025-04-09", res.Data.Items[0].Date)
	last := res.Data.Items[len(res.Data.Items)-1]
	assert.LessOrEqual(t, last.Date, res.Data.Items[0].Date)
}

func TestRouter_CadaPeticionIncrementaElContadorHTTP(t *testing.T) {
	app := newTestApp(t)

	antes := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/health", "200"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	despues := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/health", "200"))
	assert.Equal(t, antes+1, despues)
}

func TestRouter_CuerpoInvalidoDevuelve400(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "shivasai@gmail.com", "admin123")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader([]byte("{esto no es json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
