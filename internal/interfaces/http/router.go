package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"

	"github.com/itael/inventory-products-api/internal/application/auth"
	"github.com/itael/inventory-products-api/internal/application/usecase"
	"github.com/itael/inventory-products-api/internal/i18n"
	"github.com/itael/inventory-products-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	RoleUC      *usecase.RoleUseCase
	DashboardUC *usecase.DashboardUseCase
	AuthUC      *auth.UseCase
	Translator  *i18n.Translator
	Metrics     *metrics.HTTPMetrics
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (login público; logout/me requieren sesión)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// i18n (público: la pantalla de login ya necesita traducciones)
	i18nGroup := api.Group("/i18n")
	i18nHandler := NewI18nHandler(deps.Translator)
	i18nGroup.Get("/translations", i18nHandler.Translations)
	i18nGroup.Get("/locale", i18nHandler.Locale)
	i18nGroup.Put("/locale", i18nHandler.SetLocale)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido, permisos por operación)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequirePermission("products.read"), productHandler.List)
	products.Post("/", RequirePermission("products.create"), productHandler.Create)
	products.Get("/:id", RequirePermission("products.read"), productHandler.GetByID)
	products.Put("/:id", RequirePermission("products.update"), productHandler.Update)
	products.Delete("/:id", RequirePermission("products.delete"), productHandler.Delete)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequirePermission("users.read"), userHandler.List)
	users.Post("/", RequirePermission("users.create"), userHandler.Create)
	users.Get("/with-roles", RequirePermission("users.read"), userHandler.ListWithRoles)
	users.Get("/exists/username", RequirePermission("users.read"), userHandler.UsernameExists)
	users.Get("/exists/email", RequirePermission("users.read"), userHandler.EmailExists)
	users.Get("/:id", RequirePermission("users.read"), userHandler.GetByID)
	users.Put("/:id", RequirePermission("users.update"), userHandler.Update)
	users.Delete("/:id", RequirePermission("users.delete"), userHandler.Delete)

	// Roles y catálogo de permisos (protegido)
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", RequirePermission("roles.read"), roleHandler.List)
	roles.Post("/", RequirePermission("roles.create"), roleHandler.Create)
	roles.Get("/:id", RequirePermission("roles.read"), roleHandler.GetByID)
	roles.Put("/:id", RequirePermission("roles.update"), roleHandler.Update)
	roles.Delete("/:id", RequirePermission("roles.delete"), roleHandler.Delete)

	permissions := protected.Group("/permissions")
	permissions.Get("/", RequirePermission("roles.read"), roleHandler.ListPermissions)
	permissions.Post("/", RequirePermission("permissions.update"), roleHandler.CreatePermission)
	permissions.Put("/:id", RequirePermission("permissions.update"), roleHandler.UpdatePermission)
	permissions.Delete("/:id", RequirePermission("permissions.update"), roleHandler.DeletePermission)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequirePermission("dashboard.read"), dashboardHandler.Summary)
}
