package entity

// PermissionAction acción sobre un módulo del panel.
type PermissionAction string

const (
	ActionCreate PermissionAction = "create"
	ActionEdit   PermissionAction = "edit"
	ActionDelete PermissionAction = "delete"
	ActionShow   PermissionAction = "show"
)

// Permission permisos de un rol sobre un módulo del panel.
type Permission struct {
	Module string
	Create bool
	Edit   bool
	Delete bool
	Show   bool
}

// Allows indica si el permiso habilita la acción dada.
func (p Permission) Allows(action PermissionAction) bool {
	switch action {
	case ActionCreate:
		return p.Create
	case ActionEdit:
		return p.Edit
	case ActionDelete:
		return p.Delete
	case ActionShow:
		return p.Show
	}
	return false
}

// Role rol de empleado con su matriz de permisos por módulo.
// StaffCount es denormalizado, no una relación viva.
type Role struct {
	Audit
	Name        string
	Status      StaffStatus
	StaffCount  int
	Permissions []Permission
}

// Clone copia el registro, incluida la matriz de permisos.
func (r *Role) Clone() *Role {
	cp := *r
	cp.Permissions = append([]Permission(nil), r.Permissions...)
	return &cp
}

// Allows busca el módulo en la matriz y evalúa la acción.
func (r *Role) Allows(module string, action PermissionAction) bool {
	for _, p := range r.Permissions {
		if p.Module == module {
			return p.Allows(action)
		}
	}
	return false
}
