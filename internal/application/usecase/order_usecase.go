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

// ReceiptGenerator genera el comprobante PDF de un pedido.
type ReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}

// OrderUseCase operaciones sobre pedidos del punto de venta.
type OrderUseCase struct {
	repo     repository.OrderRepository
	receipts ReceiptGenerator
	gw       *Gateway
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, receipts ReceiptGenerator, gw *Gateway) *OrderUseCase {
	return &OrderUseCase{repo: repo, receipts: receipts, gw: gw}
}

var orderComparators = listquery.Comparators[*entity.Order]{
	"id":       func(a, b *entity.Order) int { return listquery.CompareStrings(a.ID, b.ID) },
	"customer": func(a, b *entity.Order) int { return listquery.CompareStrings(a.CustomerName, b.CustomerName) },
	"date":     func(a, b *entity.Order) int { return listquery.CompareStrings(a.Date, b.Date) },
	"total":    func(a, b *entity.Order) int { return listquery.CompareDecimals(a.Total, b.Total) },
	"status":   func(a, b *entity.Order) int { return listquery.CompareStrings(string(a.Status), string(b.Status)) },
	"items":    func(a, b *entity.Order) int { return listquery.CompareInts(a.Items, b.Items) },
}

// List lista pedidos. Search busca por subcadena en el id y el cliente.
func (uc *OrderUseCase) List(ctx context.Context, f dto.OrderFilterParams) *dto.ResponseModel[*dto.PaginatedResponse[*dto.OrderResponse]] {
	defer observeList("order", time.Now())

	orders, err := uc.repo.List(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.OrderResponse]](err)
	}

	var preds []listquery.Predicate[*entity.Order]
	if f.Status != "" {
		preds = append(preds, func(o *entity.Order) bool { return string(o.Status) == f.Status })
	}
	if f.Search != "" {
		preds = append(preds, func(o *entity.Order) bool {
			return listquery.ContainsFold(o.ID, f.Search) || listquery.ContainsFold(o.CustomerName, f.Search)
		})
	}

	page := listquery.Apply(orders, f.ListParams(), preds, orderComparators)
	items := make([]*dto.OrderResponse, 0, len(page.Items))
	for _, o := range page.Items {
		items = append(items, dto.NewOrderResponse(o))
	}
	return dto.OK(&dto.PaginatedResponse[*dto.OrderResponse]{
		Items:       items,
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, "pedidos obtenidos", http.StatusOK)
}

// GetByID obtiene un pedido por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) *dto.ResponseModel[*dto.OrderResponse] {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failure[*dto.OrderResponse](err)
	}
	if o == nil {
		return failure[*dto.OrderResponse](domain.ErrNotFound)
	}
	return dto.OK(dto.NewOrderResponse(o), "pedido obtenido", http.StatusOK)
}

// Create crea un pedido.
func (uc *OrderUseCase) Create(ctx context.Context, actor string, in dto.OrderRequest) *dto.ResponseModel[*dto.OrderResponse] {
	o, err := newOrder(in)
	if err != nil {
		uc.gw.mutation("order", "create", err, "")
		return failure[*dto.OrderResponse](err)
	}
	o.Stamp(actor, uc.gw.now())
	if err := uc.repo.Insert(ctx, o); err != nil {
		uc.gw.mutation("order", "create", err, "")
		return failure[*dto.OrderResponse](err)
	}
	uc.gw.mutation("order", "create", nil, "Pedido creado")
	return dto.OK(dto.NewOrderResponse(o), "pedido creado", http.StatusCreated)
}

// Update actualiza parcialmente un pedido.
func (uc *OrderUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateOrderRequest) *dto.ResponseModel[*dto.OrderResponse] {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("order", "update", err, "")
		return failure[*dto.OrderResponse](err)
	}
	if o == nil {
		uc.gw.mutation("order", "update", domain.ErrNotFound, "")
		return failure[*dto.OrderResponse](domain.ErrNotFound)
	}

	if in.CustomerName != nil {
		if strings.TrimSpace(*in.CustomerName) == "" {
			err := fmt.Errorf("%w: el cliente es obligatorio", domain.ErrInvalidInput)
			uc.gw.mutation("order", "update", err, "")
			return failure[*dto.OrderResponse](err)
		}
		o.CustomerName = *in.CustomerName
	}
	if in.Date != nil {
		o.Date = *in.Date
	}
	if in.Total != nil {
		if in.Total.IsNegative() {
			err := fmt.Errorf("%w: el total no puede ser negativo", domain.ErrInvalidInput)
			uc.gw.mutation("order", "update", err, "")
			return failure[*dto.OrderResponse](err)
		}
		o.Total = *in.Total
	}
	if in.Status != nil {
		status := entity.OrderStatus(*in.Status)
		if !status.Valid() {
			err := fmt.Errorf("%w: estado de pedido desconocido %q", domain.ErrInvalidInput, *in.Status)
			uc.gw.mutation("order", "update", err, "")
			return failure[*dto.OrderResponse](err)
		}
		o.Status = status
	}
	if in.Items != nil {
		if *in.Items < 0 {
			err := fmt.Errorf("%w: la cantidad de líneas no puede ser negativa", domain.ErrInvalidInput)
			uc.gw.mutation("order", "update", err, "")
			return failure[*dto.OrderResponse](err)
		}
		o.Items = *in.Items
	}

	o.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, o); err != nil {
		uc.gw.mutation("order", "update", err, "")
		return failure[*dto.OrderResponse](err)
	}
	uc.gw.mutation("order", "update", nil, "Pedido actualizado")
	return dto.OK(dto.NewOrderResponse(o), "pedido actualizado", http.StatusOK)
}

// Delete elimina un pedido por ID.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) *dto.ResponseModel[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.gw.mutation("order", "delete", err, "")
		return failure[bool](err)
	}
	uc.gw.mutation("order", "delete", nil, "Pedido eliminado")
	return dto.OK(true, "pedido eliminado", http.StatusOK)
}

// Receipt genera el comprobante PDF del pedido. Devuelve los bytes crudos
// para la descarga; no viaja dentro del sobre.
func (uc *OrderUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.GenerateOrderReceipt(ctx, o)
}

func newOrder(in dto.OrderRequest) (*entity.Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("%w: el cliente es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Date) == "" {
		return nil, fmt.Errorf("%w: la fecha es obligatoria", domain.ErrInvalidInput)
	}
	if in.Total.IsNegative() {
		return nil, fmt.Errorf("%w: el total no puede ser negativo", domain.ErrInvalidInput)
	}
	status := entity.OrderStatus(in.Status)
	if in.Status == "" {
		status = entity.OrderStatusProcessing
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado de pedido desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	if in.Items < 0 {
		return nil, fmt.Errorf("%w: la cantidad de líneas no puede ser negativa", domain.ErrInvalidInput)
	}
	return &entity.Order{
		CustomerName: in.CustomerName,
		Date:         in.Date,
		Total:        in.Total,
		Status:       status,
		Items:        in.Items,
	}, nil
}
