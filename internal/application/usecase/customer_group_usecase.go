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

// CustomerGroupUseCase operaciones sobre grupos de clientes. El borrado
// verifica que ningún cliente referencie al grupo.
type CustomerGroupUseCase struct {
	repo      repository.CustomerGroupRepository
	customers repository.CustomerRepository
	gw        *Gateway
}

// NewCustomerGroupUseCase construye el caso de uso.
func NewCustomerGroupUseCase(repo repository.CustomerGroupRepository, customers repository.CustomerRepository, gw *Gateway) *CustomerGroupUseCase {
	return &CustomerGroupUseCase{repo: repo, customers: customers, gw: gw}
}

var customerGroupComparators = listquery.Comparators[*entity.CustomerGroup]{
	"id": func(a, b *entity.CustomerGroup) int { return listquery.CompareStrings(a.ID, b.ID) },
	"customerGroupName": func(a, b *entity.CustomerGroup) int {
		return listquery.CompareStrings(a.CustomerGroupName, b.CustomerGroupName)
	},
	"customerGroupStatus": func(a, b *entity.CustomerGroup) int {
		return listquery.CompareStrings(string(a.CustomerGroupStatus), string(b.CustomerGroupStatus))
	},
}

// List lista grupos con filtros, orden y paginación.
func (uc *CustomerGroupUseCase) List(ctx context.Context, f dto.CustomerGroupFilterParams) *dto.ResponseModel[*dto.PaginatedResponse[*dto.CustomerGroupResponse]] {
	defer observeList("customer_group", time.Now())

	groups, err := uc.repo.List(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.CustomerGroupResponse]](err)
	}

	var preds []listquery.Predicate[*entity.CustomerGroup]
	if f.Status != "" {
		preds = append(preds, func(g *entity.CustomerGroup) bool {
			return string(g.CustomerGroupStatus) == f.Status
		})
	}
	if f.Name != "" {
		preds = append(preds, func(g *entity.CustomerGroup) bool {
			return listquery.ContainsFold(g.CustomerGroupName, f.Name)
		})
	}

	page := listquery.Apply(groups, f.ListParams(), preds, customerGroupComparators)
	items := make([]*dto.CustomerGroupResponse, 0, len(page.Items))
	for _, g := range page.Items {
		items = append(items, dto.NewCustomerGroupResponse(g))
	}
	return dto.OK(&dto.PaginatedResponse[*dto.CustomerGroupResponse]{
		Items:       items,
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, "grupos de clientes obtenidos", http.StatusOK)
}

// GetByID obtiene un grupo por ID.
func (uc *CustomerGroupUseCase) GetByID(ctx context.Context, id string) *dto.ResponseModel[*dto.CustomerGroupResponse] {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failure[*dto.CustomerGroupResponse](err)
	}
	if g == nil {
		return failure[*dto.CustomerGroupResponse](domain.ErrGroupNotFound)
	}
	return dto.OK(dto.NewCustomerGroupResponse(g), "grupo de clientes obtenido", http.StatusOK)
}

// Create crea un grupo de clientes.
func (uc *CustomerGroupUseCase) Create(ctx context.Context, actor string, in dto.CustomerGroupRequest) *dto.ResponseModel[*dto.CustomerGroupResponse] {
	g, err := newCustomerGroup(in)
	if err != nil {
		uc.gw.mutation("customer_group", "create", err, "")
		return failure[*dto.CustomerGroupResponse](err)
	}
	g.Stamp(actor, uc.gw.now())
	if err := uc.repo.Insert(ctx, g); err != nil {
		uc.gw.mutation("customer_group", "create", err, "")
		return failure[*dto.CustomerGroupResponse](err)
	}
	uc.gw.mutation("customer_group", "create", nil, "Grupo de clientes creado")
	return dto.OK(dto.NewCustomerGroupResponse(g), "grupo de clientes creado", http.StatusCreated)
}

// Update actualiza parcialmente un grupo.
func (uc *CustomerGroupUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateCustomerGroupRequest) *dto.ResponseModel[*dto.CustomerGroupResponse] {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("customer_group", "update", err, "")
		return failure[*dto.CustomerGroupResponse](err)
	}
	if g == nil {
		uc.gw.mutation("customer_group", "update", domain.ErrGroupNotFound, "")
		return failure[*dto.CustomerGroupResponse](domain.ErrGroupNotFound)
	}

	if in.CustomerGroupName != nil {
		if strings.TrimSpace(*in.CustomerGroupName) == "" {
			err := fmt.Errorf("%w: el nombre del grupo es obligatorio", domain.ErrInvalidInput)
			uc.gw.mutation("customer_group", "update", err, "")
			return failure[*dto.CustomerGroupResponse](err)
		}
		g.CustomerGroupName = *in.CustomerGroupName
	}
	if in.CustomerGroupStatus != nil {
		status := entity.GroupStatus(*in.CustomerGroupStatus)
		if !status.Valid() {
			err := fmt.Errorf("%w: estado de grupo desconocido %q", domain.ErrInvalidInput, *in.CustomerGroupStatus)
			uc.gw.mutation("customer_group", "update", err, "")
			return failure[*dto.CustomerGroupResponse](err)
		}
		g.CustomerGroupStatus = status
	}

	g.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, g); err != nil {
		uc.gw.mutation("customer_group", "update", err, "")
		return failure[*dto.CustomerGroupResponse](err)
	}
	uc.gw.mutation("customer_group", "update", nil, "Grupo de clientes actualizado")
	return dto.OK(dto.NewCustomerGroupResponse(g), "grupo de clientes actualizado", http.StatusOK)
}

// Delete elimina un grupo. Falla si algún cliente lo referencia.
func (uc *CustomerGroupUseCase) Delete(ctx context.Context, id string) *dto.ResponseModel[bool] {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("customer_group", "delete", err, "")
		return failure[bool](err)
	}
	if g == nil {
		uc.gw.mutation("customer_group", "delete", domain.ErrGroupNotFound, "")
		return failure[bool](domain.ErrGroupNotFound)
	}

	customers, err := uc.customers.List(ctx)
	if err != nil {
		uc.gw.mutation("customer_group", "delete", err, "")
		return failure[bool](err)
	}
	for _, c := range customers {
		if c.CustomerGroupID == id {
			err := fmt.Errorf("%w: el grupo tiene clientes asociados", domain.ErrInvalidInput)
			uc.gw.mutation("customer_group", "delete", err, "")
			return failure[bool](err)
		}
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.gw.mutation("customer_group", "delete", err, "")
		return failure[bool](err)
	}
	uc.gw.mutation("customer_group", "delete", nil, "Grupo de clientes eliminado")
	return dto.OK(true, "grupo de clientes eliminado", http.StatusOK)
}

func newCustomerGroup(in dto.CustomerGroupRequest) (*entity.CustomerGroup, error) {
	if strings.TrimSpace(in.CustomerGroupName) == "" {
		return nil, fmt.Errorf("%w: el nombre del grupo es obligatorio", domain.ErrInvalidInput)
	}
	status := entity.GroupStatus(in.CustomerGroupStatus)
	if in.CustomerGroupStatus == "" {
		status = entity.GroupStatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado de grupo desconocido %q", domain.ErrInvalidInput, in.CustomerGroupStatus)
	}
	return &entity.CustomerGroup{
		CustomerGroupName:   in.CustomerGroupName,
		CustomerGroupStatus: status,
	}, nil
}
