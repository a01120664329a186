package dto

import "github.com/jhoicas/resto-admin-api/internal/domain/entity"

// PermissionDTO permisos de un rol sobre un módulo.
type PermissionDTO struct {
	Module string `json:"module"`
	Create bool   `json:"create"`
	Edit   bool   `json:"edit"`
	Delete bool   `json:"delete"`
	Show   bool   `json:"show"`
}

// RoleRequest entrada para crear un rol con su matriz de permisos.
type RoleRequest struct {
	Name        string          `json:"name"`
	Status      string          `json:"status"`
	Permissions []PermissionDTO `json:"permissions"`
}

// UpdateRoleRequest entrada parcial para actualizar un rol. Permissions nil
// conserva la matriz actual; vacía la reemplaza por ninguna.
type UpdateRoleRequest struct {
	Name        *string         `json:"name"`
	Status      *string         `json:"status"`
	Permissions []PermissionDTO `json:"permissions"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	AuditFields
	Name        string          `json:"name"`
	Status      string          `json:"status"`
	StaffCount  int             `json:"staffCount"`
	Permissions []PermissionDTO `json:"permissions"`
}

// NewRoleResponse mapea la entidad a su DTO de salida.
func NewRoleResponse(r *entity.Role) *RoleResponse {
	if r == nil {
		return nil
	}
	perms := make([]PermissionDTO, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, PermissionDTO{
			Module: p.Module,
			Create: p.Create,
			Edit:   p.Edit,
			Delete: p.Delete,
			Show:   p.Show,
		})
	}
	return &RoleResponse{
		AuditFields: auditOf(r.Audit),
		Name:        r.Name,
		Status:      string(r.Status),
		StaffCount:  r.StaffCount,
		Permissions: perms,
	}
}

// PermissionsOf traduce la matriz DTO a entidades.
func PermissionsOf(in []PermissionDTO) []entity.Permission {
	out := make([]entity.Permission, 0, len(in))
	for _, p := range in {
		out = append(out, entity.Permission{
			Module: p.Module,
			Create: p.Create,
			Edit:   p.Edit,
			Delete: p.Delete,
			Show:   p.Show,
		})
	}
	return out
}

// RoleFilterParams filtros del listado de roles.
type RoleFilterParams struct {
	PaginationParams
	Status string `query:"status"`
	Search string `query:"search"`
}
