package entity

// StaffStatus estado laboral del empleado.
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "Active"
	StaffStatusInactive StaffStatus = "Inactive"
)

// Valid indica si el estado es uno de los permitidos.
func (s StaffStatus) Valid() bool {
	return s == StaffStatusActive || s == StaffStatusInactive
}

// Staff empleado del negocio. Role es el nombre del rol (denormalizado);
// la relación viva con Role no existe, solo el conteo en Role.StaffCount.
type Staff struct {
	Audit
	Name         string
	Avatar       string
	Email        string
	Phone        string
	Role         string
	Status       StaffStatus
	PasswordHash string // bcrypt; nunca se serializa
}

// Clone copia el registro.
func (s *Staff) Clone() *Staff {
	cp := *s
	return &cp
}
