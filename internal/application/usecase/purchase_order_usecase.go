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

// PurchaseOrderUseCase operaciones sobre órdenes de compra. El estado solo
// cambia vía Transition siguiendo el ciclo Pending→Approved→Received; el
// total siempre se recalcula de las líneas.
type PurchaseOrderUseCase struct {
	repo repository.PurchaseOrderRepository
	gw   *Gateway
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(repo repository.PurchaseOrderRepository, gw *Gateway) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, gw: gw}
}

var purchaseOrderComparators = listquery.Comparators[*entity.PurchaseOrder]{
	"id":       func(a, b *entity.PurchaseOrder) int { return listquery.CompareStrings(a.ID, b.ID) },
	"supplier": func(a, b *entity.PurchaseOrder) int { return listquery.CompareStrings(a.Supplier, b.Supplier) },
	"date":     func(a, b *entity.PurchaseOrder) int { return listquery.CompareStrings(a.Date, b.Date) },
	"deliveryDate": func(a, b *entity.PurchaseOrder) int {
		return listquery.CompareStrings(a.DeliveryDate, b.DeliveryDate)
	},
	"total": func(a, b *entity.PurchaseOrder) int { return listquery.CompareDecimals(a.Total, b.Total) },
	"status": func(a, b *entity.PurchaseOrder) int {
		return listquery.CompareStrings(string(a.Status), string(b.Status))
	},
}

// List lista órdenes de compra. Search busca por subcadena en el id y el proveedor.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, f dto.PurchaseOrderFilterParams) *dto.ResponseModel[*dto.PaginatedResponse[*dto.PurchaseOrderResponse]] {
	defer observeList("purchase_order", time.Now())

	orders, err := uc.repo.List(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.PurchaseOrderResponse]](err)
	}

	var preds []listquery.Predicate[*entity.PurchaseOrder]
	if f.Status != "" {
		preds = append(preds, func(p *entity.PurchaseOrder) bool { return string(p.Status) == f.Status })
	}
	if f.Search != "" {
		preds = append(preds, func(p *entity.PurchaseOrder) bool {
			return listquery.ContainsFold(p.ID, f.Search) || listquery.ContainsFold(p.Supplier, f.Search)
		})
	}

	page := listquery.Apply(orders, f.ListParams(), preds, purchaseOrderComparators)
	items := make([]*dto.PurchaseOrderResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, dto.NewPurchaseOrderResponse(p))
	}
	return dto.OK(&dto.PaginatedResponse[*dto.PurchaseOrderResponse]{
		Items:       items,
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, "órdenes de compra obtenidas", http.StatusOK)
}

// GetByID obtiene una orden de compra por ID.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) *dto.ResponseModel[*dto.PurchaseOrderResponse] {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failure[*dto.PurchaseOrderResponse](err)
	}
	if p == nil {
		return failure[*dto.PurchaseOrderResponse](domain.ErrNotFound)
	}
	return dto.OK(dto.NewPurchaseOrderResponse(p), "orden de compra obtenida", http.StatusOK)
}

// Create crea una orden de compra en estado Pending con el total calculado.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, actor string, in dto.PurchaseOrderRequest) *dto.ResponseModel[*dto.PurchaseOrderResponse] {
	p, err := newPurchaseOrder(in)
	if err != nil {
		uc.gw.mutation("purchase_order", "create", err, "")
		return failure[*dto.PurchaseOrderResponse](err)
	}
	p.Stamp(actor, uc.gw.now())
	if err := uc.repo.Insert(ctx, p); err != nil {
		uc.gw.mutation("purchase_order", "create", err, "")
		return failure[*dto.PurchaseOrderResponse](err)
	}
	uc.gw.mutation("purchase_order", "create", nil, "Orden de compra creada")
	return dto.OK(dto.NewPurchaseOrderResponse(p), "orden de compra creada", http.StatusCreated)
}

// Update actualiza parcialmente una orden de compra. El estado no se toca
// aquí; las líneas nuevas recalculan el total.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, actor, id string, in dto.UpdatePurchaseOrderRequest) *dto.ResponseModel[*dto.PurchaseOrderResponse] {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("purchase_order", "update", err, "")
		return failure[*dto.PurchaseOrderResponse](err)
	}
	if p == nil {
		uc.gw.mutation("purchase_order", "update", domain.ErrNotFound, "")
		return failure[*dto.PurchaseOrderResponse](domain.ErrNotFound)
	}

	if in.Supplier != nil {
		if strings.TrimSpace(*in.Supplier) == "" {
			err := fmt.Errorf("%w: el proveedor es obligatorio", domain.ErrInvalidInput)
			uc.gw.mutation("purchase_order", "update", err, "")
			return failure[*dto.PurchaseOrderResponse](err)
		}
		p.Supplier = *in.Supplier
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	if in.DeliveryDate != nil {
		p.DeliveryDate = *in.DeliveryDate
	}
	if in.Items != nil {
		items, err := purchaseOrderItems(in.Items)
		if err != nil {
			uc.gw.mutation("purchase_order", "update", err, "")
			return failure[*dto.PurchaseOrderResponse](err)
		}
		p.Items = items
		p.Total = p.ComputeTotal()
	}

	p.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, p); err != nil {
		uc.gw.mutation("purchase_order", "update", err, "")
		return failure[*dto.PurchaseOrderResponse](err)
	}
	uc.gw.mutation("purchase_order", "update", nil, "Orden de compra actualizada")
	return dto.OK(dto.NewPurchaseOrderResponse(p), "orden de compra actualizada", http.StatusOK)
}

// Transition cambia el estado de la orden validando el ciclo de vida.
func (uc *PurchaseOrderUseCase) Transition(ctx context.Context, actor, id string, in dto.PurchaseOrderTransitionRequest) *dto.ResponseModel[*dto.PurchaseOrderResponse] {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("purchase_order", "transition", err, "")
		return failure[*dto.PurchaseOrderResponse](err)
	}
	if p == nil {
		uc.gw.mutation("purchase_order", "transition", domain.ErrNotFound, "")
		return failure[*dto.PurchaseOrderResponse](domain.ErrNotFound)
	}

	to := entity.PurchaseOrderStatus(in.Status)
	if !to.Valid() {
		err := fmt.Errorf("%w: estado de orden desconocido %q", domain.ErrInvalidInput, in.Status)
		uc.gw.mutation("purchase_order", "transition", err, "")
		return failure[*dto.PurchaseOrderResponse](err)
	}
	if !p.Status.CanTransition(to) {
		err := fmt.Errorf("%w: de %s a %s", domain.ErrTransition, p.Status, to)
		uc.gw.mutation("purchase_order", "transition", err, "")
		return failure[*dto.PurchaseOrderResponse](err)
	}
	p.Status = to

	p.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, p); err != nil {
		uc.gw.mutation("purchase_order", "transition", err, "")
		return failure[*dto.PurchaseOrderResponse](err)
	}
	uc.gw.mutation("purchase_order", "transition", nil, fmt.Sprintf("Orden de compra %s: %s", p.ID, to))
	return dto.OK(dto.NewPurchaseOrderResponse(p), "estado de la orden actualizado", http.StatusOK)
}

// Delete elimina una orden de compra por ID.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, id string) *dto.ResponseModel[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.gw.mutation("purchase_order", "delete", err, "")
		return failure[bool](err)
	}
	uc.gw.mutation("purchase_order", "delete", nil, "Orden de compra eliminada")
	return dto.OK(true, "orden de compra eliminada", http.StatusOK)
}

func newPurchaseOrder(in dto.PurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	if strings.TrimSpace(in.Supplier) == "" {
		return nil, fmt.Errorf("%w: el proveedor es obligatorio", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la orden necesita al menos una línea", domain.ErrInvalidInput)
	}
	items, err := purchaseOrderItems(in.Items)
	if err != nil {
		return nil, err
	}
	p := &entity.PurchaseOrder{
		Supplier:     in.Supplier,
		Date:         in.Date,
		DeliveryDate: in.DeliveryDate,
		Status:       entity.PurchaseOrderStatusPending,
		Items:        items,
	}
	p.Total = p.ComputeTotal()
	return p, nil
}

func purchaseOrderItems(in []dto.PurchaseOrderItemDTO) ([]entity.PurchaseOrderItem, error) {
	items := make([]entity.PurchaseOrderItem, 0, len(in))
	for _, it := range in {
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("%w: toda línea necesita un nombre", domain.ErrInvalidInput)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la cantidad de %q debe ser mayor a cero", domain.ErrInvalidInput, it.Name)
		}
		if it.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: el precio de %q no puede ser negativo", domain.ErrInvalidInput, it.Name)
		}
		items = append(items, entity.PurchaseOrderItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
		})
	}
	return items, nil
}
