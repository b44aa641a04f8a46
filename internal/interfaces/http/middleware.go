package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/pkg/jwt"
)

// Locals keys para el principal en Fiber.
const (
	LocalUserID      = "user_id"
	LocalUsername    = "username"
	LocalPermissions = "permissions"
)

// AuthMiddleware valida el Bearer Token y carga el principal a c.Locals.
// Es la barrera de entrada de las rutas protegidas: sin sesión válida la
// navegación termina en 401 (el análogo del redirect a /login).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalPermissions, claims.Permissions)
		return c.Next()
	}
}

// RequirePermission autoriza la ruta si el principal posee alguno de los
// permisos indicados. Anónimo (sin AuthMiddleware antes) responde 401.
func RequirePermission(permissions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		granted := GetPermissions(c)
		if granted == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
		}
		for _, want := range permissions {
			for _, have := range granted {
				if want == have {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetPermissions devuelve la lista de permisos del contexto, o nil si no hay
// principal cargado.
func GetPermissions(c *fiber.Ctx) []string {
	p, _ := c.Locals(LocalPermissions).([]string)
	return p
}
