package dto

import "github.com/jhoicas/resto-admin-api/internal/domain/entity"

// ReservationRequest entrada para crear una reserva.
type ReservationRequest struct {
	CustomerName string `json:"customer"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Guests       int    `json:"guests"`
	Status       string `json:"status"`
	Phone        string `json:"phone"`
}

// UpdateReservationRequest entrada parcial para actualizar una reserva.
type UpdateReservationRequest struct {
	CustomerName *string `json:"customer"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	Guests       *int    `json:"guests"`
	Status       *string `json:"status"`
	Phone        *string `json:"phone"`
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	AuditFields
	CustomerName string `json:"customer"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Guests       int    `json:"guests"`
	Status       string `json:"status"`
	Phone        string `json:"phone"`
}

// NewReservationResponse mapea la entidad a su DTO de salida.
func NewReservationResponse(r *entity.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	return &ReservationResponse{
		AuditFields:  auditOf(r.Audit),
		CustomerName: r.CustomerName,
		Date:         r.Date,
		Time:         r.Time,
		Guests:       r.Guests,
		Status:       string(r.Status),
		Phone:        r.Phone,
	}
}

// ReservationFilterParams filtros del listado de reservas.
type ReservationFilterParams struct {
	PaginationParams
	Status string `query:"status"`
	Search string `query:"search"`
}
