package dto

import (
	"time"

	"github.com/itael/inventory-products-api/internal/domain/entity"
)

// CreateRoleRequest entrada para crear un rol. La API habla ids de permisos;
// el caso de uso los resuelve contra el catálogo y embebe copias.
type CreateRoleRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Description   string   `json:"description" validate:"max=500"`
	PermissionIDs []string `json:"permissionIds"`
	IsActive      bool     `json:"isActive"`
}

// UpdateRoleRequest entrada parcial para actualizar un rol.
type UpdateRoleRequest struct {
	Name          *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Description   *string   `json:"description" validate:"omitempty,max=500"`
	PermissionIDs *[]string `json:"permissionIds"`
	IsActive      *bool     `json:"isActive"`
}

// RoleResponse salida de un rol con sus permisos embebidos.
type RoleResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Permissions []entity.Permission `json:"permissions"`
	IsActive    bool                `json:"isActive"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// RoleListResponse listado completo de roles.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
	Total int            `json:"total"`
}

// CreatePermissionRequest entrada para añadir una entrada al catálogo.
type CreatePermissionRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	Category    string `json:"category" validate:"required,max=100"`
	Resource    string `json:"resource" validate:"required,max=100"`
	Action      string `json:"action" validate:"required,max=100"`
}

// UpdatePermissionRequest entrada parcial para editar una entrada del catálogo.
type UpdatePermissionRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Resource    *string `json:"resource" validate:"omitempty,max=100"`
	Action      *string `json:"action" validate:"omitempty,max=100"`
}

// PermissionListResponse catálogo completo de permisos.
type PermissionListResponse struct {
	Items []entity.Permission `json:"items"`
	Total int                 `json:"total"`
}
