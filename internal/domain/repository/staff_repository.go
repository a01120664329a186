package repository

import (
	"context"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// StaffRepository puerto de persistencia para empleados.
type StaffRepository interface {
	List(ctx context.Context) ([]*entity.Staff, error)
	GetByID(ctx context.Context, id string) (*entity.Staff, error)
	Insert(ctx context.Context, s *entity.Staff) error
	Update(ctx context.Context, s *entity.Staff) error
	Delete(ctx context.Context, id string) error
}

// RoleRepository puerto de persistencia para roles y permisos.
type RoleRepository interface {
	List(ctx context.Context) ([]*entity.Role, error)
	GetByID(ctx context.Context, id string) (*entity.Role, error)
	Insert(ctx context.Context, r *entity.Role) error
	Update(ctx context.Context, r *entity.Role) error
	Delete(ctx context.Context, id string) error
}
