package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/domain"
	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
	"github.com/jhoicas/resto-admin-api/internal/domain/listquery"
	"github.com/jhoicas/resto-admin-api/internal/domain/repository"
)

// StaffUseCase operaciones sobre empleados. Las claves se guardan como hash
// bcrypt y nunca salen en las respuestas.
type StaffUseCase struct {
	repo repository.StaffRepository
	gw   *Gateway
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.StaffRepository, gw *Gateway) *StaffUseCase {
	return &StaffUseCase{repo: repo, gw: gw}
}

var staffComparators = listquery.Comparators[*entity.Staff]{
	"id":     func(a, b *entity.Staff) int { return listquery.CompareStrings(a.ID, b.ID) },
	"name":   func(a, b *entity.Staff) int { return listquery.CompareStrings(a.Name, b.Name) },
	"email":  func(a, b *entity.Staff) int { return listquery.CompareStrings(a.Email, b.Email) },
	"role":   func(a, b *entity.Staff) int { return listquery.CompareStrings(a.Role, b.Role) },
	"status": func(a, b *entity.Staff) int { return listquery.CompareStrings(string(a.Status), string(b.Status)) },
}

// List lista empleados. Search busca por subcadena en nombre y email.
func (uc *StaffUseCase) List(ctx context.Context, f dto.StaffFilterParams) *dto.ResponseModel[*dto.PaginatedResponse[*dto.StaffResponse]] {
	defer observeList("staff", time.Now())

	staff, err := uc.repo.List(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.StaffResponse]](err)
	}

	var preds []listquery.Predicate[*entity.Staff]
	if f.Role != "" {
		preds = append(preds, func(s *entity.Staff) bool { return s.Role == f.Role })
	}
	if f.Status != "" {
		preds = append(preds, func(s *entity.Staff) bool { return string(s.Status) == f.Status })
	}
	if f.Search != "" {
		preds = append(preds, func(s *entity.Staff) bool {
			return listquery.ContainsFold(s.Name, f.Search) || listquery.ContainsFold(s.Email, f.Search)
		})
	}

	page := listquery.Apply(staff, f.ListParams(), preds, staffComparators)
	items := make([]*dto.StaffResponse, 0, len(page.Items))
	for _, s := range page.Items {
		items = append(items, dto.NewStaffResponse(s))
	}
	return dto.OK(&dto.PaginatedResponse[*dto.StaffResponse]{
		Items:       items,
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, "empleados obtenidos", http.StatusOK)
}

// GetByID obtiene un empleado por ID.
func (uc *StaffUseCase) GetByID(ctx context.Context, id string) *dto.ResponseModel[*dto.StaffResponse] {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failure[*dto.StaffResponse](err)
	}
	if s == nil {
		return failure[*dto.StaffResponse](domain.ErrNotFound)
	}
	return dto.OK(dto.NewStaffResponse(s), "empleado obtenido", http.StatusOK)
}

// Create crea un empleado con su clave hasheada.
func (uc *StaffUseCase) Create(ctx context.Context, actor string, in dto.StaffRequest) *dto.ResponseModel[*dto.StaffResponse] {
	s, err := newStaff(in)
	if err != nil {
		uc.gw.mutation("staff", "create", err, "")
		return failure[*dto.StaffResponse](err)
	}
	s.Stamp(actor, uc.gw.now())
	if err := uc.repo.Insert(ctx, s); err != nil {
		uc.gw.mutation("staff", "create", err, "")
		return failure[*dto.StaffResponse](err)
	}
	uc.gw.mutation("staff", "create", nil, "Empleado creado")
	return dto.OK(dto.NewStaffResponse(s), "empleado creado", http.StatusCreated)
}

// Update actualiza parcialmente un empleado. Password presente rehashea.
func (uc *StaffUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateStaffRequest) *dto.ResponseModel[*dto.StaffResponse] {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("staff", "update", err, "")
		return failure[*dto.StaffResponse](err)
	}
	if s == nil {
		uc.gw.mutation("staff", "update", domain.ErrNotFound, "")
		return failure[*dto.StaffResponse](domain.ErrNotFound)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			err := fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
			uc.gw.mutation("staff", "update", err, "")
			return failure[*dto.StaffResponse](err)
		}
		s.Name = *in.Name
	}
	if in.Avatar != nil {
		s.Avatar = *in.Avatar
	}
	if in.Email != nil {
		if !emailRe.MatchString(*in.Email) {
			err := fmt.Errorf("%w: el email no es válido", domain.ErrInvalidInput)
			uc.gw.mutation("staff", "update", err, "")
			return failure[*dto.StaffResponse](err)
		}
		s.Email = *in.Email
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Role != nil {
		s.Role = *in.Role
	}
	if in.Status != nil {
		status := entity.StaffStatus(*in.Status)
		if !status.Valid() {
			err := fmt.Errorf("%w: estado de empleado desconocido %q", domain.ErrInvalidInput, *in.Status)
			uc.gw.mutation("staff", "update", err, "")
			return failure[*dto.StaffResponse](err)
		}
		s.Status = status
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			uc.gw.mutation("staff", "update", err, "")
			return failure[*dto.StaffResponse](err)
		}
		s.PasswordHash = hash
	}

	s.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, s); err != nil {
		uc.gw.mutation("staff", "update", err, "")
		return failure[*dto.StaffResponse](err)
	}
	uc.gw.mutation("staff", "update", nil, "Empleado actualizado")
	return dto.OK(dto.NewStaffResponse(s), "empleado actualizado", http.StatusOK)
}

// Delete elimina un empleado por ID.
func (uc *StaffUseCase) Delete(ctx context.Context, id string) *dto.ResponseModel[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.gw.mutation("staff", "delete", err, "")
		return failure[bool](err)
	}
	uc.gw.mutation("staff", "delete", nil, "Empleado eliminado")
	return dto.OK(true, "empleado eliminado", http.StatusOK)
}

func newStaff(in dto.StaffRequest) (*entity.Staff, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if !emailRe.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: el email no es válido", domain.ErrInvalidInput)
	}
	status := entity.StaffStatus(in.Status)
	if in.Status == "" {
		status = entity.StaffStatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado de empleado desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	return &entity.Staff{
		Name:         in.Name,
		Avatar:       in.Avatar,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         in.Role,
		Status:       status,
		PasswordHash: hash,
	}, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", fmt.Errorf("%w: la clave debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
