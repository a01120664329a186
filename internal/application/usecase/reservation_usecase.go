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

// ReservationUseCase operaciones sobre reservas de mesa.
type ReservationUseCase struct {
	repo repository.ReservationRepository
	gw   *Gateway
}

// NewReservationUseCase construye el caso de uso.
func NewReservationUseCase(repo repository.ReservationRepository, gw *Gateway) *ReservationUseCase {
	return &ReservationUseCase{repo: repo, gw: gw}
}

var reservationComparators = listquery.Comparators[*entity.Reservation]{
	"id":       func(a, b *entity.Reservation) int { return listquery.CompareStrings(a.ID, b.ID) },
	"customer": func(a, b *entity.Reservation) int { return listquery.CompareStrings(a.CustomerName, b.CustomerName) },
	"date":     func(a, b *entity.Reservation) int { return listquery.CompareStrings(a.Date, b.Date) },
	"time":     func(a, b *entity.Reservation) int { return listquery.CompareStrings(a.Time, b.Time) },
	"guests":   func(a, b *entity.Reservation) int { return listquery.CompareInts(a.Guests, b.Guests) },
	"status": func(a, b *entity.Reservation) int {
		return listquery.CompareStrings(string(a.Status), string(b.Status))
	},
}

// List lista reservas. Search busca por subcadena en el id y el cliente.
func (uc *ReservationUseCase) List(ctx context.Context, f dto.ReservationFilterParams) *dto.ResponseModel[*dto.PaginatedResponse[*dto.ReservationResponse]] {
	defer observeList("reservation", time.Now())

	reservations, err := uc.repo.List(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.ReservationResponse]](err)
	}

	var preds []listquery.Predicate[*entity.Reservation]
	if f.Status != "" {
		preds = append(preds, func(r *entity.Reservation) bool { return string(r.Status) == f.Status })
	}
	if f.Search != "" {
		preds = append(preds, func(r *entity.Reservation) bool {
			return listquery.ContainsFold(r.ID, f.Search) || listquery.ContainsFold(r.CustomerName, f.Search)
		})
	}

	page := listquery.Apply(reservations, f.ListParams(), preds, reservationComparators)
	items := make([]*dto.ReservationResponse, 0, len(page.Items))
	for _, r := range page.Items {
		items = append(items, dto.NewReservationResponse(r))
	}
	return dto.OK(&dto.PaginatedResponse[*dto.ReservationResponse]{
		Items:       items,
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, "reservas obtenidas", http.StatusOK)
}

// GetByID obtiene una reserva por ID.
func (uc *ReservationUseCase) GetByID(ctx context.Context, id string) *dto.ResponseModel[*dto.ReservationResponse] {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failure[*dto.ReservationResponse](err)
	}
	if r == nil {
		return failure[*dto.ReservationResponse](domain.ErrNotFound)
	}
	return dto.OK(dto.NewReservationResponse(r), "reserva obtenida", http.StatusOK)
}

// Create crea una reserva.
func (uc *ReservationUseCase) Create(ctx context.Context, actor string, in dto.ReservationRequest) *dto.ResponseModel[*dto.ReservationResponse] {
	r, err := newReservation(in)
	if err != nil {
		uc.gw.mutation("reservation", "create", err, "")
		return failure[*dto.ReservationResponse](err)
	}
	r.Stamp(actor, uc.gw.now())
	if err := uc.repo.Insert(ctx, r); err != nil {
		uc.gw.mutation("reservation", "create", err, "")
		return failure[*dto.ReservationResponse](err)
	}
	uc.gw.mutation("reservation", "create", nil, "Reserva creada")
	return dto.OK(dto.NewReservationResponse(r), "reserva creada", http.StatusCreated)
}

// Update actualiza parcialmente una reserva.
func (uc *ReservationUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateReservationRequest) *dto.ResponseModel[*dto.ReservationResponse] {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("reservation", "update", err, "")
		return failure[*dto.ReservationResponse](err)
	}
	if r == nil {
		uc.gw.mutation("reservation", "update", domain.ErrNotFound, "")
		return failure[*dto.ReservationResponse](domain.ErrNotFound)
	}

	if in.CustomerName != nil {
		if strings.TrimSpace(*in.CustomerName) == "" {
			err := fmt.Errorf("%w: el cliente es obligatorio", domain.ErrInvalidInput)
			uc.gw.mutation("reservation", "update", err, "")
			return failure[*dto.ReservationResponse](err)
		}
		r.CustomerName = *in.CustomerName
	}
	if in.Date != nil {
		r.Date = *in.Date
	}
	if in.Time != nil {
		r.Time = *in.Time
	}
	if in.Guests != nil {
		if *in.Guests <= 0 {
			err := fmt.Errorf("%w: la cantidad de comensales debe ser mayor a cero", domain.ErrInvalidInput)
			uc.gw.mutation("reservation", "update", err, "")
			return failure[*dto.ReservationResponse](err)
		}
		r.Guests = *in.Guests
	}
	if in.Status != nil {
		status := entity.ReservationStatus(*in.Status)
		if !status.Valid() {
			err := fmt.Errorf("%w: estado de reserva desconocido %q", domain.ErrInvalidInput, *in.Status)
			uc.gw.mutation("reservation", "update", err, "")
			return failure[*dto.ReservationResponse](err)
		}
		r.Status = status
	}
	if in.Phone != nil {
		r.Phone = *in.Phone
	}

	r.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, r); err != nil {
		uc.gw.mutation("reservation", "update", err, "")
		return failure[*dto.ReservationResponse](err)
	}
	uc.gw.mutation("reservation", "update", nil, "Reserva actualizada")
	return dto.OK(dto.NewReservationResponse(r), "reserva actualizada", http.StatusOK)
}

// Delete elimina una reserva por ID.
func (uc *ReservationUseCase) Delete(ctx context.Context, id string) *dto.ResponseModel[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.gw.mutation("reservation", "delete", err, "")
		return failure[bool](err)
	}
	uc.gw.mutation("reservation", "delete", nil, "Reserva eliminada")
	return dto.OK(true, "reserva eliminada", http.StatusOK)
}

func newReservation(in dto.ReservationRequest) (*entity.Reservation, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("%w: el cliente es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Date) == "" {
		return nil, fmt.Errorf("%w: la fecha es obligatoria", domain.ErrInvalidInput)
	}
	if in.Guests <= 0 {
		return nil, fmt.Errorf("%w: la cantidad de comensales debe ser mayor a cero", domain.ErrInvalidInput)
	}
	status := entity.ReservationStatus(in.Status)
	if in.Status == "" {
		status = entity.ReservationStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado de reserva desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	return &entity.Reservation{
		CustomerName: in.CustomerName,
		Date:         in.Date,
		Time:         in.Time,
		Guests:       in.Guests,
		Status:       status,
		Phone:        in.Phone,
	}, nil
}
