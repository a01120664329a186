package repository

import (
	"context"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para el catálogo de productos.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Insert(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
}

// CampaignRepository puerto de persistencia para campañas de marketing.
type CampaignRepository interface {
	List(ctx context.Context) ([]*entity.Campaign, error)
	GetByID(ctx context.Context, id string) (*entity.Campaign, error)
	Insert(ctx context.Context, c *entity.Campaign) error
	Update(ctx context.Context, c *entity.Campaign) error
	Delete(ctx context.Context, id string) error
}
