package dto

import "time"

// CreateUserRequest entrada para crear una cuenta del panel.
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	RoleID    string `json:"roleId" validate:"required"`
	IsActive  bool   `json:"isActive"`
}

// UpdateUserRequest entrada parcial para actualizar una cuenta.
type UpdateUserRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	RoleID    *string `json:"roleId"`
	IsActive  *bool   `json:"isActive"`
}

// UserResponse salida de una cuenta.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	RoleID      string     `json:"roleId"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// UserWithRoleResponse salida de la vista compuesta usuarios×roles.
type UserWithRoleResponse struct {
	UserResponse
	RoleName string `json:"roleName"`
}

// UserListResponse listado completo de cuentas.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
