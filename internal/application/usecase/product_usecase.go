package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/domain"
	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
	"github.com/jhoicas/resto-admin-api/internal/domain/listquery"
	"github.com/jhoicas/resto-admin-api/internal/domain/repository"
)

// ProductUseCase operaciones sobre el catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
	gw   *Gateway
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, gw *Gateway) *ProductUseCase {
	return &ProductUseCase{repo: repo, gw: gw}
}

var productComparators = listquery.Comparators[*entity.Product]{
	"id":       func(a, b *entity.Product) int { return listquery.CompareStrings(a.ID, b.ID) },
	"name":     func(a, b *entity.Product) int { return listquery.CompareStrings(a.Name, b.Name) },
	"category": func(a, b *entity.Product) int { return listquery.CompareStrings(a.Category, b.Category) },
	"price":    func(a, b *entity.Product) int { return listquery.CompareDecimals(a.Price, b.Price) },
	"status":   func(a, b *entity.Product) int { return listquery.CompareStrings(string(a.Status), string(b.Status)) },
	"sku":      func(a, b *entity.Product) int { return listquery.CompareStrings(a.SKU, b.SKU) },
}

// List lista productos. Search busca por subcadena en nombre y SKU.
func (uc *ProductUseCase) List(ctx context.Context, f dto.ProductFilterParams) *dto.ResponseModel[*dto.PaginatedResponse[*dto.ProductResponse]] {
	defer observeList("product", time.Now())

	products, err := uc.repo.List(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.ProductResponse]](err)
	}

	var preds []listquery.Predicate[*entity.Product]
	if f.Category != "" {
		preds = append(preds, func(p *entity.Product) bool { return p.Category == f.Category })
	}
	if f.Status != "" {
		preds = append(preds, func(p *entity.Product) bool { return string(p.Status) == f.Status })
	}
	if f.Search != "" {
		preds = append(preds, func(p *entity.Product) bool {
			return listquery.ContainsFold(p.Name, f.Search) || listquery.ContainsFold(p.SKU, f.Search)
		})
	}

	page := listquery.Apply(products, f.ListParams(), preds, productComparators)
	items := make([]*dto.ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, dto.NewProductResponse(p))
	}
	return dto.OK(&dto.PaginatedResponse[*dto.ProductResponse]{
		Items:       items,
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, "productos obtenidos", http.StatusOK)
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) *dto.ResponseModel[*dto.ProductResponse] {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failure[*dto.ProductResponse](err)
	}
	if p == nil {
		return failure[*dto.ProductResponse](domain.ErrNotFound)
	}
	return dto.OK(dto.NewProductResponse(p), "producto obtenido", http.StatusOK)
}

// Create crea un producto del catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, actor string, in dto.ProductRequest) *dto.ResponseModel[*dto.ProductResponse] {
	p, err := newProduct(in)
	if err != nil {
		uc.gw.mutation("product", "create", err, "")
		return failure[*dto.ProductResponse](err)
	}
	p.Stamp(actor, uc.gw.now())
	if err := uc.repo.Insert(ctx, p); err != nil {
		uc.gw.mutation("product", "create", err, "")
		return failure[*dto.ProductResponse](err)
	}
	uc.gw.mutation("product", "create", nil, "Producto creado")
	return dto.OK(dto.NewProductResponse(p), "producto creado", http.StatusCreated)
}

// Update actualiza parcialmente un producto.
func (uc *ProductUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateProductRequest) *dto.ResponseModel[*dto.ProductResponse] {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("product", "update", err, "")
		return failure[*dto.ProductResponse](err)
	}
	if p == nil {
		uc.gw.mutation("product", "update", domain.ErrNotFound, "")
		return failure[*dto.ProductResponse](domain.ErrNotFound)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			err := fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
			uc.gw.mutation("product", "update", err, "")
			return failure[*dto.ProductResponse](err)
		}
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			err := fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
			uc.gw.mutation("product", "update", err, "")
			return failure[*dto.ProductResponse](err)
		}
		p.Price = *in.Price
	}
	if in.Status != nil {
		status := entity.ProductStatus(*in.Status)
		if !status.Valid() {
			err := fmt.Errorf("%w: estado de producto desconocido %q", domain.ErrInvalidInput, *in.Status)
			uc.gw.mutation("product", "update", err, "")
			return failure[*dto.ProductResponse](err)
		}
		p.Status = status
	}
	if in.SKU != nil {
		p.SKU = *in.SKU
	}
	if in.Image != nil {
		p.Image = *in.Image
	}

	p.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, p); err != nil {
		uc.gw.mutation("product", "update", err, "")
		return failure[*dto.ProductResponse](err)
	}
	uc.gw.mutation("product", "update", nil, "Producto actualizado")
	return dto.OK(dto.NewProductResponse(p), "producto actualizado", http.StatusOK)
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) *dto.ResponseModel[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.gw.mutation("product", "delete", err, "")
		return failure[bool](err)
	}
	uc.gw.mutation("product", "delete", nil, "Producto eliminado")
	return dto.OK(true, "producto eliminado", http.StatusOK)
}

func newProduct(in dto.ProductRequest) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	status := entity.ProductStatus(in.Status)
	if in.Status == "" {
		status = entity.ProductStatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado de producto desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	return &entity.Product{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Status:   status,
		SKU:      in.SKU,
		Image:    in.Image,
	}, nil
}
