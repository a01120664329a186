package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/infrastructure/memory"
	"github.com/jhoicas/resto-admin-api/pkg/config"
	"github.com/jhoicas/resto-admin-api/pkg/jwt"
)

func newAuthUseCase() *AuthUseCase {
	store := memory.NewStore(memory.Latency{})
	return NewAuthUseCase(store.Staff, config.JWTConfig{
		Secret:     "secreto-de-test",
		Expiration: 60,
		Issuer:     "resto-admin",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newAuthUseCase()

	res := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "shivasai@gmail.com",
		Password: "admin123",
	})

	require.True(t, res.Success)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Shiva Sai", res.Data.Staff.Name)

	// El token lleva identidad y rol para el middleware de permisos.
	staffID, name, role, err := jwt.Parse("secreto-de-test", res.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Data.Staff.ID, staffID)
	assert.Equal(t, "Shiva Sai", name)
	assert.Equal(t, "Manager", role)
}

func TestLogin_ClaveIncorrectaDevuelve401(t *testing.T) {
	uc := newAuthUseCase()

	res := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "shivasai@gmail.com",
		Password: "incorrecta",
	})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
	assert.Nil(t, res.Data)
}

func TestLogin_EmailInexistenteRespondeIgualQueClaveMala(t *testing.T) {
	uc := newAuthUseCase()

	res := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "admin123",
	})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
}

func TestLogin_EmpleadoInactivoDevuelve403(t *testing.T) {
	uc := newAuthUseCase()

	// Priya Desai está sembrada como Inactive.
	res := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "priya@gmail.com",
		Password: "admin123",
	})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusForbidden, res.Status)
}
