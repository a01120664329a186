package entity

import "time"

// Audit campos de auditoría comunes a todos los registros del panel.
// Los sella el gateway de mutaciones, nunca el llamador.
type Audit struct {
	ID         string
	Active     bool
	CreatedBy  string
	CreatedOn  time.Time
	ModifiedBy string
	ModifiedOn time.Time
}

// Stamp sella los campos de creación con el actor y el instante dados.
func (a *Audit) Stamp(actor string, at time.Time) {
	a.Active = true
	a.CreatedBy = actor
	a.CreatedOn = at
	a.ModifiedBy = actor
	a.ModifiedOn = at
}

// Touch re-sella los campos de modificación.
func (a *Audit) Touch(actor string, at time.Time) {
	a.ModifiedBy = actor
	a.ModifiedOn = at
}

// GetID y SetID exponen el identificador para los almacenes genéricos.
func (a *Audit) GetID() string   { return a.ID }
func (a *Audit) SetID(id string) { a.ID = id }
