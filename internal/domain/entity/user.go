package entity

import "time"

// User representa una cuenta del panel de administración.
// RoleID referencia a un Role por id; la referencia no se valida en el store:
// un rol huérfano degrada a la etiqueta "Unknown Role" en las vistas.
type User struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"` // único, sin distinguir mayúsculas
	Email       string     `json:"email"`    // único, sin distinguir mayúsculas
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	RoleID      string     `json:"roleId"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// EntityID implementa store.Entity.
func (u *User) EntityID() string { return u.ID }

// SetEntityID implementa store.Entity.
func (u *User) SetEntityID(id string) { u.ID = id }

// Stamp actualiza los timestamps de auditoría.
func (u *User) Stamp(now time.Time, created bool) {
	if created {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}

// UserWithRole es el modelo de lectura que une User con el nombre de su rol.
type UserWithRole struct {
	User
	RoleName string `json:"roleName"`
}

// UnknownRoleLabel etiqueta centinela para referencias de rol huérfanas.
const UnknownRoleLabel = "Unknown Role"
