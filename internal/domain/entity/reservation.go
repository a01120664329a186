package entity

// ReservationStatus estado de una reserva de mesa.
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Valid indica si el estado es uno de los permitidos.
func (s ReservationStatus) Valid() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusPending || s == ReservationStatusCancelled
}

// Reservation reserva de mesa. El ID usa el formato "RES-NNN".
type Reservation struct {
	Audit
	CustomerName string
	Date         string // ISO YYYY-MM-DD
	Time         string // HH:MM
	Guests       int
	Status       ReservationStatus
	Phone        string
}

// Clone copia el registro.
func (r *Reservation) Clone() *Reservation {
	cp := *r
	return &cp
}
