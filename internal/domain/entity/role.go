package entity

import "time"

// AdminRoleID id del rol incorporado que la capa de políticas protege contra
// eliminación. El store en sí no impone la restricción.
const AdminRoleID = "admin"

// Role agrupa permisos bajo un nombre. Los permisos se embeben desnormalizados
// (copias de Permission, no ids) siguiendo el modelo canónico del panel.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// EntityID implementa store.Entity.
func (r *Role) EntityID() string { return r.ID }

// SetEntityID implementa store.Entity.
func (r *Role) SetEntityID(id string) { r.ID = id }

// Stamp actualiza los timestamps de auditoría.
func (r *Role) Stamp(now time.Time, created bool) {
	if created {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

// HasPermission indica si el rol contiene un permiso por id.
func (r *Role) HasPermission(permissionID string) bool {
	for _, p := range r.Permissions {
		if p.ID == permissionID {
			return true
		}
	}
	return false
}

// Permission es una entrada del catálogo cerrado de permisos.
// Se siembra una vez; los roles embeben copias de un subconjunto.
type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"` // agrupación para la UI
	Resource    string `json:"resource"`
	Action      string `json:"action"`
}

// EntityID implementa store.Entity.
func (p *Permission) EntityID() string { return p.ID }

// SetEntityID implementa store.Entity.
func (p *Permission) SetEntityID(id string) { p.ID = id }

// Stamp no aplica: los permisos no llevan timestamps de auditoría.
func (p *Permission) Stamp(time.Time, bool) {}
