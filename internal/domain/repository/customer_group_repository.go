package repository

import (
	"context"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// CustomerGroupRepository puerto de persistencia para grupos de clientes.
type CustomerGroupRepository interface {
	List(ctx context.Context) ([]*entity.CustomerGroup, error)
	GetByID(ctx context.Context, id string) (*entity.CustomerGroup, error)
	Insert(ctx context.Context, g *entity.CustomerGroup) error
	Update(ctx context.Context, g *entity.CustomerGroup) error
	Delete(ctx context.Context, id string) error
}
