package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

// CustomerRequest entrada para crear un cliente.
type CustomerRequest struct {
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	PhoneNumber     string          `json:"phoneNumber"`
	EmailAddress    string          `json:"emailAddress"`
	Gender          string          `json:"gender"`
	DateOfBirth     string          `json:"dateOfBirth"`
	AnniversaryDate string          `json:"anniversaryDate"`
	Address         string          `json:"address"`
	CompanyName     string          `json:"companyName"`
	CompanyAddress  string          `json:"companyAddress"`
	GSTNumber       string          `json:"gstNumber"`
	TaxStateCode    string          `json:"taxStateCode"`
	AmountDue       decimal.Decimal `json:"amountDue"`
	CustomerGroupID string          `json:"customerGroupId"`
}

// UpdateCustomerRequest entrada parcial para actualizar un cliente.
type UpdateCustomerRequest struct {
	FirstName       *string          `json:"firstName"`
	LastName        *string          `json:"lastName"`
	PhoneNumber     *string          `json:"phoneNumber"`
	EmailAddress    *string          `json:"emailAddress"`
	Gender          *string          `json:"gender"`
	DateOfBirth     *string          `json:"dateOfBirth"`
	AnniversaryDate *string          `json:"anniversaryDate"`
	Address         *string          `json:"address"`
	CompanyName     *string          `json:"companyName"`
	CompanyAddress  *string          `json:"companyAddress"`
	GSTNumber       *string          `json:"gstNumber"`
	TaxStateCode    *string          `json:"taxStateCode"`
	AmountDue       *decimal.Decimal `json:"amountDue"`
	CustomerGroupID *string          `json:"customerGroupId"`
}

// CustomerResponse salida de un cliente. CustomerGroup viene resuelto
// (denormalizado) en los listados.
type CustomerResponse struct {
	AuditFields
	FirstName       string                 `json:"firstName"`
	LastName        string                 `json:"lastName"`
	PhoneNumber     string                 `json:"phoneNumber"`
	EmailAddress    string                 `json:"emailAddress"`
	Gender          string                 `json:"gender"`
	DateOfBirth     string                 `json:"dateOfBirth,omitempty"`
	AnniversaryDate string                 `json:"anniversaryDate,omitempty"`
	Address         string                 `json:"address,omitempty"`
	CompanyName     string                 `json:"companyName,omitempty"`
	CompanyAddress  string                 `json:"companyAddress,omitempty"`
	GSTNumber       string                 `json:"gstNumber,omitempty"`
	TaxStateCode    string                 `json:"taxStateCode,omitempty"`
	AmountDue       decimal.Decimal        `json:"amountDue"`
	CustomerGroupID string                 `json:"customerGroupId"`
	CustomerGroup   *CustomerGroupResponse `json:"customerGroup,omitempty"`
}

// NewCustomerResponse mapea la entidad a su DTO de salida.
func NewCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		AuditFields:     auditOf(c.Audit),
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		PhoneNumber:     c.PhoneNumber,
		EmailAddress:    c.EmailAddress,
		Gender:          string(c.Gender),
		DateOfBirth:     c.DateOfBirth,
		AnniversaryDate: c.AnniversaryDate,
		Address:         c.Address,
		CompanyName:     c.CompanyName,
		CompanyAddress:  c.CompanyAddress,
		GSTNumber:       c.GSTNumber,
		TaxStateCode:    c.TaxStateCode,
		AmountDue:       c.AmountDue,
		CustomerGroupID: c.CustomerGroupID,
	}
}

// CustomerFilterParams filtros del listado de clientes. Name busca por
// subcadena en nombre y apellido únicamente; email y teléfono tienen sus
// propios filtros.
type CustomerFilterParams struct {
	PaginationParams
	CustomerGroupID string   `query:"customerGroupId"`
	Name            string   `query:"name"`
	PhoneNumber     string   `query:"phoneNumber"`
	EmailAddress    string   `query:"emailAddress"`
	Gender          string   `query:"gender"`
	MinAmountDue    *float64 `query:"minAmountDue"`
	MaxAmountDue    *float64 `query:"maxAmountDue"`
}
