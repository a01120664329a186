package entity

// GroupStatus estado de un grupo de clientes.
type GroupStatus string

const (
	GroupStatusActive   GroupStatus = "active"
	GroupStatusInactive GroupStatus = "inactive"
)

// Valid indica si el estado es uno de los permitidos.
func (s GroupStatus) Valid() bool {
	return s == GroupStatusActive || s == GroupStatusInactive
}

// CustomerGroup agrupa clientes para segmentación y marketing.
type CustomerGroup struct {
	Audit
	CustomerGroupName   string
	CustomerGroupStatus GroupStatus
}

// Clone copia el registro.
func (g *CustomerGroup) Clone() *CustomerGroup {
	cp := *g
	return &cp
}
