// Package auth implementa el inicio de sesión del personal del panel.
package auth

import (
	"context"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/domain"
	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
	"github.com/jhoicas/resto-admin-api/internal/domain/repository"
	"github.com/jhoicas/resto-admin-api/pkg/config"
	"github.com/jhoicas/resto-admin-api/pkg/jwt"
)

// AuthUseCase caso de uso de autenticación del personal. Devuelve el sobre
// uniforme como el resto de las operaciones del panel.
type AuthUseCase struct {
	staff  repository.StaffRepository
	jwtCfg config.JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(staff repository.StaffRepository, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{staff: staff, jwtCfg: jwtCfg}
}

// Login verifica email/clave, exige empleado activo y genera el JWT de sesión.
// Credenciales malas y empleado inexistente responden igual: no se revela
// cuál de los dos falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) *dto.ResponseModel[*dto.LoginResponse] {
	s, err := uc.findByEmail(ctx, in.Email)
	if err != nil {
		return dto.Fail[*dto.LoginResponse](err.Error(), http.StatusInternalServerError)
	}
	if s == nil {
		return dto.Fail[*dto.LoginResponse](domain.ErrUnauthorized.Error(), http.StatusUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(in.Password)); err != nil {
		return dto.Fail[*dto.LoginResponse](domain.ErrUnauthorized.Error(), http.StatusUnauthorized)
	}
	if s.Status != entity.StaffStatusActive {
		return dto.Fail[*dto.LoginResponse](domain.ErrForbidden.Error(), http.StatusForbidden)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, s.ID, s.Name, s.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return dto.Fail[*dto.LoginResponse](err.Error(), http.StatusInternalServerError)
	}
	return dto.OK(&dto.LoginResponse{
		Token: token,
		Staff: *dto.NewStaffResponse(s),
	}, "sesión iniciada", http.StatusOK)
}

func (uc *AuthUseCase) findByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	staff, err := uc.staff.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range staff {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}
