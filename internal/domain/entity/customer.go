package entity

import "github.com/shopspring/decimal"

// Gender género declarado por el cliente.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid indica si el género es uno de los permitidos.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Customer cliente del negocio. CustomerGroupID debe referenciar un grupo
// existente; la integridad se verifica en el gateway de mutaciones, no por
// constraint de base de datos.
type Customer struct {
	Audit
	FirstName       string
	LastName        string
	PhoneNumber     string // formato internacional fijo: +NN NNNNNNNNNN
	EmailAddress    string
	Gender          Gender
	DateOfBirth     string // ISO YYYY-MM-DD, opcional
	AnniversaryDate string // ISO YYYY-MM-DD, opcional
	Address         string
	CompanyName     string
	CompanyAddress  string
	GSTNumber       string
	TaxStateCode    string
	AmountDue       decimal.Decimal // nunca negativo
	CustomerGroupID string
}

// Clone copia el registro.
func (c *Customer) Clone() *Customer {
	cp := *c
	return &cp
}
