package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
	"github.com/jhoicas/resto-admin-api/internal/infrastructure/memory"
)

// newPermissionApp monta una ruta protegida por la matriz de permisos con el
// rol inyectado directo en locals, para aislar el chequeo del parseo del token.
func newPermissionApp(t *testing.T, role, module string, action entity.PermissionAction) *fiber.App {
	t.Helper()
	store := memory.NewStore(memory.Latency{})

	app := fiber.New()
	app.Get("/recurso",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals(LocalRole, role)
			}
			return c.Next()
		},
		RequirePermission(store.Roles, module, action),
		func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) },
	)
	return app
}

func get(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/recurso", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequirePermission_ManagerTieneAccesoTotal(t *testing.T) {
	app := newPermissionApp(t, "Manager", "Customers", entity.ActionDelete)
	assert.Equal(t, http.StatusOK, get(t, app))
}

func TestRequirePermission_ChefPuedeVerInventario(t *testing.T) {
	app := newPermissionApp(t, "Chef", "Inventory", entity.ActionShow)
	assert.Equal(t, http.StatusOK, get(t, app))
}

func TestRequirePermission_ChefNoPuedeCrearInventario(t *testing.T) {
	app := newPermissionApp(t, "Chef", "Inventory", entity.ActionCreate)
	assert.Equal(t, http.StatusForbidden, get(t, app))
}

func TestRequirePermission_ChefNoVeModulosAjenos(t *testing.T) {
	app := newPermissionApp(t, "Chef", "Marketing", entity.ActionShow)
	assert.Equal(t, http.StatusForbidden, get(t, app))
}

func TestRequirePermission_RolInactivoQuedaBloqueado(t *testing.T) {
	// "Waiter" está sembrado como Inactive.
	app := newPermissionApp(t, "Waiter", "Dashboard", entity.ActionShow)
	assert.Equal(t, http.StatusForbidden, get(t, app))
}

func TestRequirePermission_SinRolEnLaSesionDevuelve401(t *testing.T) {
	app := newPermissionApp(t, "", "Customers", entity.ActionShow)
	assert.Equal(t, http.StatusUnauthorized, get(t, app))
}
