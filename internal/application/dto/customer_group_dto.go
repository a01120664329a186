package dto

import "github.com/jhoicas/resto-admin-api/internal/domain/entity"

// CustomerGroupRequest entrada para crear o reemplazar un grupo de clientes.
type CustomerGroupRequest struct {
	CustomerGroupName   string `json:"customerGroupName"`
	CustomerGroupStatus string `json:"customerGroupStatus"`
}

// UpdateCustomerGroupRequest entrada parcial para actualizar un grupo.
type UpdateCustomerGroupRequest struct {
	CustomerGroupName   *string `json:"customerGroupName"`
	CustomerGroupStatus *string `json:"customerGroupStatus"`
}

// CustomerGroupResponse salida de un grupo de clientes.
type CustomerGroupResponse struct {
	AuditFields
	CustomerGroupName   string `json:"customerGroupName"`
	CustomerGroupStatus string `json:"customerGroupStatus"`
}

// NewCustomerGroupResponse mapea la entidad a su DTO de salida.
func NewCustomerGroupResponse(g *entity.CustomerGroup) *CustomerGroupResponse {
	if g == nil {
		return nil
	}
	return &CustomerGroupResponse{
		AuditFields:         auditOf(g.Audit),
		CustomerGroupName:   g.CustomerGroupName,
		CustomerGroupStatus: string(g.CustomerGroupStatus),
	}
}

// CustomerGroupFilterParams filtros del listado de grupos.
type CustomerGroupFilterParams struct {
	PaginationParams
	Status string `query:"status"`
	Name   string `query:"name"`
}
