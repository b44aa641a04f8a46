package dto

// LoginRequest credenciales de acceso al panel.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthUserResponse principal autenticado con su lista plana de permisos y el
// token de sesión.
type AuthUserResponse struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Permissions []string `json:"permissions"`
	Token       string   `json:"token"`
}
