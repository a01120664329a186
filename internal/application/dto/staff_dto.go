package dto

import "github.com/jhoicas/resto-admin-api/internal/domain/entity"

// StaffRequest entrada para crear un empleado. Password se hashea antes de
// persistir y nunca vuelve en las respuestas.
type StaffRequest struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Password string `json:"password"`
}

// UpdateStaffRequest entrada parcial para actualizar un empleado.
type UpdateStaffRequest struct {
	Name     *string `json:"name"`
	Avatar   *string `json:"avatar"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Password *string `json:"password"`
}

// StaffResponse salida de un empleado.
type StaffResponse struct {
	AuditFields
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// NewStaffResponse mapea la entidad a su DTO de salida (sin hash de clave).
func NewStaffResponse(s *entity.Staff) *StaffResponse {
	if s == nil {
		return nil
	}
	return &StaffResponse{
		AuditFields: auditOf(s.Audit),
		Name:        s.Name,
		Avatar:      s.Avatar,
		Email:       s.Email,
		Phone:       s.Phone,
		Role:        s.Role,
		Status:      string(s.Status),
	}
}

// StaffFilterParams filtros del listado de empleados. Search busca por
// subcadena en nombre y email.
type StaffFilterParams struct {
	PaginationParams
	Role   string `query:"role"`
	Status string `query:"status"`
	Search string `query:"search"`
}
