package repository

import (
	"context"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para artículos de inventario.
type InventoryRepository interface {
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Insert(ctx context.Context, i *entity.InventoryItem) error
	Update(ctx context.Context, i *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
}

// PurchaseOrderRepository puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	List(ctx context.Context) ([]*entity.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	Insert(ctx context.Context, p *entity.PurchaseOrder) error
	Update(ctx context.Context, p *entity.PurchaseOrder) error
	Delete(ctx context.Context, id string) error
}
