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

// RoleUseCase operaciones sobre roles y su matriz de permisos por módulo.
type RoleUseCase struct {
	repo repository.RoleRepository
	gw   *Gateway
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, gw *Gateway) *RoleUseCase {
	return &RoleUseCase{repo: repo, gw: gw}
}

var roleComparators = listquery.Comparators[*entity.Role]{
	"id":         func(a, b *entity.Role) int { return listquery.CompareStrings(a.ID, b.ID) },
	"name":       func(a, b *entity.Role) int { return listquery.CompareStrings(a.Name, b.Name) },
	"status":     func(a, b *entity.Role) int { return listquery.CompareStrings(string(a.Status), string(b.Status)) },
	"staffCount": func(a, b *entity.Role) int { return listquery.CompareInts(a.StaffCount, b.StaffCount) },
}

// List lista roles. Search busca por subcadena en el nombre.
func (uc *RoleUseCase) List(ctx context.Context, f dto.RoleFilterParams) *dto.ResponseModel[*dto.PaginatedResponse[*dto.RoleResponse]] {
	defer observeList("role", time.Now())

	roles, err := uc.repo.List(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.RoleResponse]](err)
	}

	var preds []listquery.Predicate[*entity.Role]
	if f.Status != "" {
		preds = append(preds, func(r *entity.Role) bool { return string(r.Status) == f.Status })
	}
	if f.Search != "" {
		preds = append(preds, func(r *entity.Role) bool { return listquery.ContainsFold(r.Name, f.Search) })
	}

	page := listquery.Apply(roles, f.ListParams(), preds, roleComparators)
	items := make([]*dto.RoleResponse, 0, len(page.Items))
	for _, r := range page.Items {
		items = append(items, dto.NewRoleResponse(r))
	}
	return dto.OK(&dto.PaginatedResponse[*dto.RoleResponse]{
		Items:       items,
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, "roles obtenidos", http.StatusOK)
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(ctx context.Context, id string) *dto.ResponseModel[*dto.RoleResponse] {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failure[*dto.RoleResponse](err)
	}
	if r == nil {
		return failure[*dto.RoleResponse](domain.ErrNotFound)
	}
	return dto.OK(dto.NewRoleResponse(r), "rol obtenido", http.StatusOK)
}

// Create crea un rol con su matriz de permisos.
func (uc *RoleUseCase) Create(ctx context.Context, actor string, in dto.RoleRequest) *dto.ResponseModel[*dto.RoleResponse] {
	r, err := newRole(in)
	if err != nil {
		uc.gw.mutation("role", "create", err, "")
		return failure[*dto.RoleResponse](err)
	}
	r.Stamp(actor, uc.gw.now())
	if err := uc.repo.Insert(ctx, r); err != nil {
		uc.gw.mutation("role", "create", err, "")
		return failure[*dto.RoleResponse](err)
	}
	uc.gw.mutation("role", "create", nil, "Rol creado")
	return dto.OK(dto.NewRoleResponse(r), "rol creado", http.StatusCreated)
}

// Update actualiza parcialmente un rol. Permissions nil conserva la matriz.
func (uc *RoleUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateRoleRequest) *dto.ResponseModel[*dto.RoleResponse] {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("role", "update", err, "")
		return failure[*dto.RoleResponse](err)
	}
	if r == nil {
		uc.gw.mutation("role", "update", domain.ErrNotFound, "")
		return failure[*dto.RoleResponse](domain.ErrNotFound)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			err := fmt.Errorf("%w: el nombre del rol es obligatorio", domain.ErrInvalidInput)
			uc.gw.mutation("role", "update", err, "")
			return failure[*dto.RoleResponse](err)
		}
		r.Name = *in.Name
	}
	if in.Status != nil {
		status := entity.StaffStatus(*in.Status)
		if !status.Valid() {
			err := fmt.Errorf("%w: estado de rol desconocido %q", domain.ErrInvalidInput, *in.Status)
			uc.gw.mutation("role", "update", err, "")
			return failure[*dto.RoleResponse](err)
		}
		r.Status = status
	}
	if in.Permissions != nil {
		r.Permissions = dto.PermissionsOf(in.Permissions)
	}

	r.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, r); err != nil {
		uc.gw.mutation("role", "update", err, "")
		return failure[*dto.RoleResponse](err)
	}
	uc.gw.mutation("role", "update", nil, "Rol actualizado")
	return dto.OK(dto.NewRoleResponse(r), "rol actualizado", http.StatusOK)
}

// Delete elimina un rol por ID.
func (uc *RoleUseCase) Delete(ctx context.Context, id string) *dto.ResponseModel[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.gw.mutation("role", "delete", err, "")
		return failure[bool](err)
	}
	uc.gw.mutation("role", "delete", nil, "Rol eliminado")
	return dto.OK(true, "rol eliminado", http.StatusOK)
}

func newRole(in dto.RoleRequest) (*entity.Role, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre del rol es obligatorio", domain.ErrInvalidInput)
	}
	status := entity.StaffStatus(in.Status)
	if in.Status == "" {
		status = entity.StaffStatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado de rol desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	return &entity.Role{
		Name:        in.Name,
		Status:      status,
		Permissions: dto.PermissionsOf(in.Permissions),
	}, nil
}
