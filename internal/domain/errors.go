package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Ninguno es fatal para el proceso: cada operación falla de forma aislada y
// queda en manos del llamador reintentar.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrProtectedRole      = errors.New("rol protegido: no puede eliminarse")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
