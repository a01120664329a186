package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/pkg/jwt"
)

const testSecret = "secreto-de-test"

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegida", AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"staffId": GetStaffID(c),
			"actor":   Actor(c),
			"role":    GetRole(c),
		})
	})
	return app
}

func TestAuthMiddleware_SinHeaderDevuelve401(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalidoDevuelve401(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrectaDevuelve401(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate("otro-secreto", "1", "Shiva Sai", "Manager", "resto-admin", 60)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoCargaIdentidad(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate(testSecret, "1", "Shiva Sai", "Manager", "resto-admin", 60)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "1", got["staffId"])
	assert.Equal(t, "Shiva Sai", got["actor"])
	assert.Equal(t, "Manager", got["role"])
}

func TestActor_SinSesionSellaComoAdmin(t *testing.T) {
	app := fiber.New()
	app.Get("/abierta", func(c *fiber.Ctx) error {
		return c.SendString(Actor(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/abierta", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Admin", string(body))
}
