package entity

// AuthUser es el principal de sesión: identidad autenticada más su lista plana
// de permisos y el token opaco emitido en el login. No lleva expiración: un
// principal persistido de una sesión anterior se acepta tal cual al arrancar.
type AuthUser struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Permissions []string `json:"permissions"`
	Token       string   `json:"token"`
}

// HasPermission indica si el principal posee el permiso exacto.
func (a *AuthUser) HasPermission(permission string) bool {
	for _, p := range a.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission indica si el principal posee al menos uno de los permisos.
func (a *AuthUser) HasAnyPermission(permissions []string) bool {
	for _, p := range permissions {
		if a.HasPermission(p) {
			return true
		}
	}
	return false
}
