package repository

import (
	"context"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para pedidos.
type OrderRepository interface {
	List(ctx context.Context) ([]*entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Insert(ctx context.Context, o *entity.Order) error
	Update(ctx context.Context, o *entity.Order) error
	Delete(ctx context.Context, id string) error
}

// ReservationRepository puerto de persistencia para reservas.
type ReservationRepository interface {
	List(ctx context.Context) ([]*entity.Reservation, error)
	GetByID(ctx context.Context, id string) (*entity.Reservation, error)
	Insert(ctx context.Context, r *entity.Reservation) error
	Update(ctx context.Context, r *entity.Reservation) error
	Delete(ctx context.Context, id string) error
}
