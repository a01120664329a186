package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
)

func newRoleUseCase() *RoleUseCase {
	return NewRoleUseCase(newTestStore().Roles, newTestGateway())
}

func TestRole_CrearConMatrizDePermisos(t *testing.T) {
	uc := newRoleUseCase()

	res := uc.Create(context.Background(), "Admin", dto.RoleRequest{
		Name: "Cashier",
		Permissions: []dto.PermissionDTO{
			{Module: "Point of Sale", Create: true, Edit: true, Show: true},
			{Module: "All Orders", Show: true},
		},
	})

	require.True(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "Active", res.Data.Status)
	require.Len(t, res.Data.Permissions, 2)
	assert.True(t, res.Data.Permissions[0].Create)
	assert.False(t, res.Data.Permissions[1].Delete)
}

func TestRole_ActualizarSinPermisosConservaLaMatriz(t *testing.T) {
	uc := newRoleUseCase()

	nombre := "Head Chef"
	res := uc.Update(context.Background(), "Admin", "2", dto.UpdateRoleRequest{Name: &nombre})

	require.True(t, res.Success)
	assert.Equal(t, "Head Chef", res.Data.Name)
	// "Chef" está sembrado con acceso de lectura a tres módulos.
	assert.Len(t, res.Data.Permissions, 3)
}

func TestRole_MatrizNuevaReemplazaLaAnterior(t *testing.T) {
	uc := newRoleUseCase()

	res := uc.Update(context.Background(), "Admin", "2", dto.UpdateRoleRequest{
		Permissions: []dto.PermissionDTO{{Module: "Dashboard", Show: true}},
	})

	require.True(t, res.Success)
	require.Len(t, res.Data.Permissions, 1)
	assert.Equal(t, "Dashboard", res.Data.Permissions[0].Module)
}

func TestRole_OrdenPorCantidadDeEmpleados(t *testing.T) {
	uc := newRoleUseCase()

	f := dto.RoleFilterParams{}
	f.Normalize("staffCount")
	f.SortDirection = "desc"
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	require.NotEmpty(t, res.Data.Items)
	// "Waiter" está sembrado con 250 empleados, el máximo.
	assert.Equal(t, "Waiter", res.Data.Items[0].Name)
}

func TestRole_CrearSinNombreFalla(t *testing.T) {
	uc := newRoleUseCase()

	res := uc.Create(context.Background(), "Admin", dto.RoleRequest{Name: "   "})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}
