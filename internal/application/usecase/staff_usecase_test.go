package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/infrastructure/memory"
)

// newStaffFixture devuelve el caso de uso y el almacén para inspeccionar el
// hash guardado, que los DTOs nunca exponen.
func newStaffFixture() (*StaffUseCase, *memory.Store) {
	store := newTestStore()
	return NewStaffUseCase(store.Staff, newTestGateway()), store
}

func TestStaff_CrearHasheaLaClave(t *testing.T) {
	uc, store := newStaffFixture()

	res := uc.Create(context.Background(), "Admin", dto.StaffRequest{
		Name:     "Carlos Mena",
		Email:    "carlos@gmail.com",
		Phone:    "+57 3009998877",
		Role:     "Waiter",
		Password: "clave-segura",
	})

	require.True(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.Status)

	s, err := store.Staff.GetByID(context.Background(), res.Data.ID)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.NotEqual(t, "clave-segura", s.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte("clave-segura")))
}

func TestStaff_ClaveCortaFalla(t *testing.T) {
	uc, _ := newStaffFixture()

	res := uc.Create(context.Background(), "Admin", dto.StaffRequest{
		Name:     "Carlos Mena",
		Email:    "carlos@gmail.com",
		Password: "123",
	})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestStaff_ActualizarConClaveNuevaRehashea(t *testing.T) {
	uc, store := newStaffFixture()

	antes, err := store.Staff.GetByID(context.Background(), "1")
	require.NoError(t, err)

	clave := "otra-clave-123"
	res := uc.Update(context.Background(), "Admin", "1", dto.UpdateStaffRequest{Password: &clave})
	require.True(t, res.Success)

	despues, err := store.Staff.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.NotEqual(t, antes.PasswordHash, despues.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(despues.PasswordHash), []byte(clave)))
}

func TestStaff_LasRespuestasNoExponenLaClave(t *testing.T) {
	uc, _ := newStaffFixture()

	f := dto.StaffFilterParams{Search: "shiva"}
	f.Normalize("name")
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	require.Len(t, res.Data.Items, 1)
	assert.Equal(t, "Shiva Sai", res.Data.Items[0].Name)
}

func TestStaff_FiltroPorEstado(t *testing.T) {
	uc, _ := newStaffFixture()

	f := dto.StaffFilterParams{Status: "Inactive"}
	f.Normalize("name")
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	// Priya Desai y Anjali Verma están sembradas como Inactive.
	assert.Equal(t, 2, res.Data.TotalCount)
}

func TestStaff_EmailInvalidoFalla(t *testing.T) {
	uc, _ := newStaffFixture()

	malo := "no-es-un-email"
	res := uc.Update(context.Background(), "Admin", "1", dto.UpdateStaffRequest{Email: &malo})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}
