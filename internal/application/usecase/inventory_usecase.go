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

// InventoryUseCase operaciones sobre artículos de inventario. El estado de
// existencias es derivado: se recalcula en cada mutación.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	gw   *Gateway
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, gw *Gateway) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, gw: gw}
}

var inventoryComparators = listquery.Comparators[*entity.InventoryItem]{
	"id":       func(a, b *entity.InventoryItem) int { return listquery.CompareStrings(a.ID, b.ID) },
	"name":     func(a, b *entity.InventoryItem) int { return listquery.CompareStrings(a.Name, b.Name) },
	"sku":      func(a, b *entity.InventoryItem) int { return listquery.CompareStrings(a.SKU, b.SKU) },
	"category": func(a, b *entity.InventoryItem) int { return listquery.CompareStrings(a.Category, b.Category) },
	"quantity": func(a, b *entity.InventoryItem) int { return listquery.CompareInts(a.Quantity, b.Quantity) },
	"reorderLevel": func(a, b *entity.InventoryItem) int {
		return listquery.CompareInts(a.ReorderLevel, b.ReorderLevel)
	},
	"status": func(a, b *entity.InventoryItem) int {
		return listquery.CompareStrings(string(a.Status), string(b.Status))
	},
}

// List lista artículos. Search busca por subcadena en nombre y SKU.
func (uc *InventoryUseCase) List(ctx context.Context, f dto.InventoryFilterParams) *dto.ResponseModel[*dto.PaginatedResponse[*dto.InventoryItemResponse]] {
	defer observeList("inventory", time.Now())

	items, err := uc.repo.List(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.InventoryItemResponse]](err)
	}

	var preds []listquery.Predicate[*entity.InventoryItem]
	if f.Category != "" {
		preds = append(preds, func(i *entity.InventoryItem) bool { return i.Category == f.Category })
	}
	if f.Status != "" {
		preds = append(preds, func(i *entity.InventoryItem) bool { return string(i.Status) == f.Status })
	}
	if f.Search != "" {
		preds = append(preds, func(i *entity.InventoryItem) bool {
			return listquery.ContainsFold(i.Name, f.Search) || listquery.ContainsFold(i.SKU, f.Search)
		})
	}

	page := listquery.Apply(items, f.ListParams(), preds, inventoryComparators)
	out := make([]*dto.InventoryItemResponse, 0, len(page.Items))
	for _, i := range page.Items {
		out = append(out, dto.NewInventoryItemResponse(i))
	}
	return dto.OK(&dto.PaginatedResponse[*dto.InventoryItemResponse]{
		Items:       out,
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, "inventario obtenido", http.StatusOK)
}

// GetByID obtiene un artículo por ID.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id string) *dto.ResponseModel[*dto.InventoryItemResponse] {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failure[*dto.InventoryItemResponse](err)
	}
	if i == nil {
		return failure[*dto.InventoryItemResponse](domain.ErrNotFound)
	}
	return dto.OK(dto.NewInventoryItemResponse(i), "artículo obtenido", http.StatusOK)
}

// Create crea un artículo de inventario con su estado derivado.
func (uc *InventoryUseCase) Create(ctx context.Context, actor string, in dto.InventoryItemRequest) *dto.ResponseModel[*dto.InventoryItemResponse] {
	i, err := newInventoryItem(in)
	if err != nil {
		uc.gw.mutation("inventory", "create", err, "")
		return failure[*dto.InventoryItemResponse](err)
	}
	i.Stamp(actor, uc.gw.now())
	if err := uc.repo.Insert(ctx, i); err != nil {
		uc.gw.mutation("inventory", "create", err, "")
		return failure[*dto.InventoryItemResponse](err)
	}
	uc.gw.mutation("inventory", "create", nil, "Artículo de inventario creado")
	return dto.OK(dto.NewInventoryItemResponse(i), "artículo creado", http.StatusCreated)
}

// Update actualiza parcialmente un artículo y rederiva su estado.
func (uc *InventoryUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateInventoryItemRequest) *dto.ResponseModel[*dto.InventoryItemResponse] {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("inventory", "update", err, "")
		return failure[*dto.InventoryItemResponse](err)
	}
	if i == nil {
		uc.gw.mutation("inventory", "update", domain.ErrNotFound, "")
		return failure[*dto.InventoryItemResponse](domain.ErrNotFound)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			err := fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
			uc.gw.mutation("inventory", "update", err, "")
			return failure[*dto.InventoryItemResponse](err)
		}
		i.Name = *in.Name
	}
	if in.SKU != nil {
		i.SKU = *in.SKU
	}
	if in.Category != nil {
		i.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			err := fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
			uc.gw.mutation("inventory", "update", err, "")
			return failure[*dto.InventoryItemResponse](err)
		}
		i.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		i.Unit = *in.Unit
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			err := fmt.Errorf("%w: el nivel de reorden no puede ser negativo", domain.ErrInvalidInput)
			uc.gw.mutation("inventory", "update", err, "")
			return failure[*dto.InventoryItemResponse](err)
		}
		i.ReorderLevel = *in.ReorderLevel
	}
	i.DeriveStatus()

	i.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, i); err != nil {
		uc.gw.mutation("inventory", "update", err, "")
		return failure[*dto.InventoryItemResponse](err)
	}
	uc.gw.mutation("inventory", "update", nil, "Artículo de inventario actualizado")
	return dto.OK(dto.NewInventoryItemResponse(i), "artículo actualizado", http.StatusOK)
}

// Delete elimina un artículo por ID.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) *dto.ResponseModel[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.gw.mutation("inventory", "delete", err, "")
		return failure[bool](err)
	}
	uc.gw.mutation("inventory", "delete", nil, "Artículo de inventario eliminado")
	return dto.OK(true, "artículo eliminado", http.StatusOK)
}

func newInventoryItem(in dto.InventoryItemRequest) (*entity.InventoryItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.SKU) == "" {
		return nil, fmt.Errorf("%w: el SKU es obligatorio", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	if in.ReorderLevel < 0 {
		return nil, fmt.Errorf("%w: el nivel de reorden no puede ser negativo", domain.ErrInvalidInput)
	}
	i := &entity.InventoryItem{
		Name:         in.Name,
		SKU:          in.SKU,
		Category:     in.Category,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		ReorderLevel: in.ReorderLevel,
	}
	i.DeriveStatus()
	return i, nil
}
