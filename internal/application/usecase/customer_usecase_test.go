package usecase

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
)

func newCustomerUseCase() *CustomerUseCase {
	store := newTestStore()
	return NewCustomerUseCase(store.Customers, store.CustomerGroups, newTestGateway())
}

func validCustomer() dto.CustomerRequest {
	return dto.CustomerRequest{
		FirstName:       "Laura",
		LastName:        "Gómez",
		PhoneNumber:     "+57 3001234567",
		EmailAddress:    "laura@example.com",
		Gender:          "Female",
		AmountDue:       decimal.NewFromInt(120),
		CustomerGroupID: "1",
	}
}

// ─────────────────────────────────────────────
// Crear
// ─────────────────────────────────────────────

func TestCustomer_CrearValido(t *testing.T) {
	uc := newCustomerUseCase()

	res := uc.Create(context.Background(), "Admin", validCustomer())

	require.True(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "6", res.Data.ID)
	assert.Equal(t, "Admin", res.Data.CreatedBy)
	assert.Equal(t, res.Data.CreatedOn, res.Data.ModifiedOn)
}

func TestCustomer_CrearConGrupoInexistenteFalla(t *testing.T) {
	uc := newCustomerUseCase()

	in := validCustomer()
	in.CustomerGroupID = "99"
	res := uc.Create(context.Background(), "Admin", in)

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusNotFound, res.Status)

	// Nada quedó persistido.
	list := uc.List(context.Background(), normalizedCustomerFilter())
	assert.Equal(t, 5, list.Data.TotalCount)
}

func TestCustomer_CrearConTelefonoInvalidoFalla(t *testing.T) {
	uc := newCustomerUseCase()

	in := validCustomer()
	in.PhoneNumber = "3001234567"
	res := uc.Create(context.Background(), "Admin", in)

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestCustomer_CrearConMontoNegativoFalla(t *testing.T) {
	uc := newCustomerUseCase()

	in := validCustomer()
	in.AmountDue = decimal.NewFromInt(-1)
	res := uc.Create(context.Background(), "Admin", in)

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

// ─────────────────────────────────────────────
// Actualizar
// ─────────────────────────────────────────────

func TestCustomer_ActualizarAGrupoInexistenteDejaElRegistroIntacto(t *testing.T) {
	uc := newCustomerUseCase()

	grupo := "99"
	res := uc.Update(context.Background(), "Admin", "1", dto.UpdateCustomerRequest{
		CustomerGroupID: &grupo,
	})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusNotFound, res.Status)

	got := uc.GetByID(context.Background(), "1")
	require.True(t, got.Success)
	assert.Equal(t, "1", got.Data.CustomerGroupID)
}

func TestCustomer_ActualizarParcheParcial(t *testing.T) {
	uc := newCustomerUseCase()

	apellido := "Reyes"
	res := uc.Update(context.Background(), "Admin", "1", dto.UpdateCustomerRequest{
		LastName: &apellido,
	})

	require.True(t, res.Success)
	assert.Equal(t, "Reyes", res.Data.LastName)
	// Los campos no parchados se conservan.
	assert.Equal(t, "Elizabeth", res.Data.FirstName)
	assert.Equal(t, "Admin", res.Data.ModifiedBy)
}

// ─────────────────────────────────────────────
// Borrar
// ─────────────────────────────────────────────

func TestCustomer_BorrarInexistenteDevuelve404(t *testing.T) {
	uc := newCustomerUseCase()

	res := uc.Delete(context.Background(), "99")

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.False(t, res.Data)
}

// ─────────────────────────────────────────────
// Listar
// ─────────────────────────────────────────────

func normalizedCustomerFilter() dto.CustomerFilterParams {
	f := dto.CustomerFilterParams{}
	f.Normalize("firstName")
	return f
}

func TestCustomer_BusquedaPorNombreIgnoraElEmail(t *testing.T) {
	uc := newCustomerUseCase()

	// Tres clientes sembrados comparten email "elizabeth2@gmail.com", pero
	// solo uno se llama Elizabeth: el filtro Name no mira el email.
	f := normalizedCustomerFilter()
	f.Name = "eliza"
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	require.Len(t, res.Data.Items, 1)
	assert.Equal(t, "Elizabeth", res.Data.Items[0].FirstName)
	assert.Equal(t, "Baker", res.Data.Items[0].LastName)
}

func TestCustomer_BusquedaTambienPorApellido(t *testing.T) {
	uc := newCustomerUseCase()

	f := normalizedCustomerFilter()
	f.Name = "walker"
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	require.Len(t, res.Data.Items, 1)
	assert.Equal(t, "Sarah", res.Data.Items[0].FirstName)
}

func TestCustomer_ListadoResuelveElGrupoDenormalizado(t *testing.T) {
	uc := newCustomerUseCase()

	res := uc.List(context.Background(), normalizedCustomerFilter())

	require.True(t, res.Success)
	for _, c := range res.Data.Items {
		require.NotNil(t, c.CustomerGroup, c.FirstName)
		assert.Equal(t, c.CustomerGroupID, c.CustomerGroup.ID)
	}
}

func TestCustomer_FiltroPorRangoDeMontoAdeudado(t *testing.T) {
	uc := newCustomerUseCase()

	min, max := 1000.0, 2000.0
	f := normalizedCustomerFilter()
	f.MinAmountDue = &min
	f.MaxAmountDue = &max
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	// Los clientes con 1480 adeudado caen en el rango; 0 y 5658 quedan fuera.
	assert.Equal(t, 3, res.Data.TotalCount)
}

func TestCustomer_PaginacionCon25Registros(t *testing.T) {
	uc := newCustomerUseCase()

	// Llevar la colección a 25 clientes.
	for i := len(uc.mustList(t)); i < 25; i++ {
		in := validCustomer()
		in.EmailAddress = fmt.Sprintf("cliente%d@example.com", i)
		require.True(t, uc.Create(context.Background(), "Admin", in).Success)
	}

	f := normalizedCustomerFilter()
	f.Page = 3
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	assert.Equal(t, 25, res.Data.TotalCount)
	assert.Equal(t, 3, res.Data.TotalPages)
	assert.Equal(t, 3, res.Data.CurrentPage)
	assert.Len(t, res.Data.Items, 5)
}

func TestCustomer_PaginaFueraDeRangoDevuelveVacia(t *testing.T) {
	uc := newCustomerUseCase()

	f := normalizedCustomerFilter()
	f.Page = 9
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	assert.Empty(t, res.Data.Items)
	assert.Equal(t, 5, res.Data.TotalCount)
}

// mustList devuelve los clientes actuales o aborta el test.
func (uc *CustomerUseCase) mustList(t *testing.T) []*dto.CustomerResponse {
	t.Helper()
	res := uc.List(context.Background(), func() dto.CustomerFilterParams {
		f := dto.CustomerFilterParams{}
		f.Normalize("firstName")
		f.PageSize = 100
		return f
	}())
	require.True(t, res.Success)
	return res.Data.Items
}
