package repository

import (
	"context"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para clientes.
// GetByID devuelve (nil, nil) si no existe; Insert asigna el ID (la
// estrategia de identificadores pertenece al almacén, no al llamador).
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Insert(ctx context.Context, c *entity.Customer) error
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
