package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
)

func newGroupUseCase() (*CustomerGroupUseCase, *CustomerUseCase) {
	store := newTestStore()
	gw := newTestGateway()
	groups := NewCustomerGroupUseCase(store.CustomerGroups, store.Customers, gw)
	customers := NewCustomerUseCase(store.Customers, store.CustomerGroups, gw)
	return groups, customers
}

// ─────────────────────────────────────────────
// Crear
// ─────────────────────────────────────────────

func TestCustomerGroup_CrearValido(t *testing.T) {
	uc, _ := newGroupUseCase()

	res := uc.Create(context.Background(), "Admin", dto.CustomerGroupRequest{
		CustomerGroupName:   "Mayoristas",
		CustomerGroupStatus: "active",
	})

	require.True(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "3", res.Data.ID)
	assert.Equal(t, "Admin", res.Data.CreatedBy)
	assert.True(t, res.Data.Active)
}

func TestCustomerGroup_CrearSinNombreFalla(t *testing.T) {
	uc, _ := newGroupUseCase()

	res := uc.Create(context.Background(), "Admin", dto.CustomerGroupRequest{
		CustomerGroupStatus: "active",
	})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Nil(t, res.Data)
}

func TestCustomerGroup_CrearConEstadoDesconocidoFalla(t *testing.T) {
	uc, _ := newGroupUseCase()

	res := uc.Create(context.Background(), "Admin", dto.CustomerGroupRequest{
		CustomerGroupName:   "Mayoristas",
		CustomerGroupStatus: "archivado",
	})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

// ─────────────────────────────────────────────
// Actualizar y borrar
// ─────────────────────────────────────────────

func TestCustomerGroup_ActualizarInexistenteDevuelve404(t *testing.T) {
	uc, _ := newGroupUseCase()

	nombre := "Nuevo nombre"
	res := uc.Update(context.Background(), "Admin", "99", dto.UpdateCustomerGroupRequest{
		CustomerGroupName: &nombre,
	})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusNotFound, res.Status)
}

func TestCustomerGroup_BorrarConClientesAsociadosFalla(t *testing.T) {
	uc, _ := newGroupUseCase()

	// El grupo "1" tiene clientes sembrados.
	res := uc.Delete(context.Background(), "1")

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.False(t, res.Data)

	// El grupo sigue existiendo.
	got := uc.GetByID(context.Background(), "1")
	assert.True(t, got.Success)
}

func TestCustomerGroup_BorrarSinClientesAsociados(t *testing.T) {
	uc, _ := newGroupUseCase()

	created := uc.Create(context.Background(), "Admin", dto.CustomerGroupRequest{
		CustomerGroupName: "Temporal",
	})
	require.True(t, created.Success)

	res := uc.Delete(context.Background(), created.Data.ID)

	assert.True(t, res.Success)
	assert.Equal(t, http.StatusOK, res.Status)
	// El borrado exitoso responde data:true.
	assert.True(t, res.Data)

	got := uc.GetByID(context.Background(), created.Data.ID)
	assert.False(t, got.Success)
	assert.Equal(t, http.StatusNotFound, got.Status)
}

// ─────────────────────────────────────────────
// Listar
// ─────────────────────────────────────────────

func TestCustomerGroup_ListarFiltraPorNombre(t *testing.T) {
	uc, _ := newGroupUseCase()

	f := dto.CustomerGroupFilterParams{Name: "vip"}
	f.Normalize("customerGroupName")
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	require.Len(t, res.Data.Items, 1)
	assert.Equal(t, "VIP", res.Data.Items[0].CustomerGroupName)
	assert.Equal(t, 1, res.Data.TotalCount)
}

// Un filtro sin normalizar no debe tumbar el listado: el pipeline aplica los
// valores por defecto cuando la página o el tamaño vienen en cero.
func TestCustomerGroup_ListarSinNormalizarUsaLosDefaults(t *testing.T) {
	uc, _ := newGroupUseCase()

	res := uc.List(context.Background(), dto.CustomerGroupFilterParams{Name: "vip"})

	require.True(t, res.Success)
	assert.Equal(t, 1, res.Data.CurrentPage)
	assert.Equal(t, 10, res.Data.PageSize)
	assert.Equal(t, 1, res.Data.TotalCount)
}

func TestCustomerGroup_ListarAplicaValoresPorDefecto(t *testing.T) {
	uc, _ := newGroupUseCase()

	f := dto.CustomerGroupFilterParams{}
	f.Normalize("customerGroupName")
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	assert.Equal(t, 1, res.Data.CurrentPage)
	assert.Equal(t, 10, res.Data.PageSize)
	// Orden ascendente por nombre: "Corporate Clients" antes que "VIP".
	require.Len(t, res.Data.Items, 2)
	assert.Equal(t, "Corporate Clients", res.Data.Items[0].CustomerGroupName)
}
