package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/itael/inventory-products-api/internal/domain/entity"
)

// Semillas por defecto de cada colección. Se adoptan cuando no existe una
// colección persistida válida.

func seedDate(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// DefaultProducts catálogo inicial de helados.
func DefaultProducts() []entity.Product {
	return []entity.Product{
		{
			ID:            "1",
			Name:          "Vanilla Supreme",
			Description:   "Premium vanilla ice cream made with real vanilla beans",
			Account:       "PRD-001",
			OriginalPrice: decimal.NewFromFloat(15.99),
			Discount:      decimal.NewFromFloat(18.8),
			UnitOfMeasure: entity.UnitLiter,
			CreatedAt:     seedDate("2024-01-15"),
			UpdatedAt:     seedDate("2024-08-10"),
		},
		{
			ID:            "2",
			Name:          "Chocolate Fudge",
			Description:   "Rich chocolate ice cream with fudge swirl",
			Account:       "PRD-002",
			OriginalPrice: decimal.NewFromFloat(17.99),
			Discount:      decimal.NewFromFloat(16.7),
			UnitOfMeasure: entity.UnitLiter,
			CreatedAt:     seedDate("2024-01-20"),
			UpdatedAt:     seedDate("2024-08-12"),
		},
		{
			ID:            "3",
			Name:          "Strawberry Delight",
			Description:   "Fresh strawberry ice cream with real fruit pieces",
			Account:       "PRD-003",
			OriginalPrice: decimal.NewFromFloat(16.99),
			Discount:      decimal.NewFromFloat(17.6),
			UnitOfMeasure: entity.UnitPint,
			CreatedAt:     seedDate("2024-02-01"),
			UpdatedAt:     seedDate("2024-08-14"),
		},
	}
}

// DefaultUsers cuentas iniciales del panel, una por rol incorporado.
func DefaultUsers() []entity.User {
	created := seedDate("2024-01-01")
	return []entity.User{
		{
			ID:        "admin-user",
			Username:  "admin",
			Email:     "admin@inventory.com",
			FirstName: "System",
			LastName:  "Administrator",
			RoleID:    "admin",
			IsActive:  true,
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:        "manager-user",
			Username:  "manager",
			Email:     "manager@inventory.com",
			FirstName: "Store",
			LastName:  "Manager",
			RoleID:    "manager",
			IsActive:  true,
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:        "employee-user",
			Username:  "employee",
			Email:     "employee@inventory.com",
			FirstName: "Store",
			LastName:  "Employee",
			RoleID:    "employee",
			IsActive:  true,
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

// DefaultPermissions catálogo cerrado de permisos. Se siembra una vez; los
// roles embeben copias de un subconjunto.
func DefaultPermissions() []entity.Permission {
	return []entity.Permission{
		{ID: "products_read", Name: "View Products", Description: "Can view product list and details", Category: "Products", Resource: "products", Action: "read"},
		{ID: "products_write", Name: "Create/Edit Products", Description: "Can create and edit products", Category: "Products", Resource: "products", Action: "write"},
		{ID: "products_delete", Name: "Delete Products", Description: "Can delete products", Category: "Products", Resource: "products", Action: "delete"},
		{ID: "roles_read", Name: "View Roles", Description: "Can view roles and permissions", Category: "Roles", Resource: "roles", Action: "read"},
		{ID: "roles_write", Name: "Create/Edit Roles", Description: "Can create and edit roles", Category: "Roles", Resource: "roles", Action: "write"},
		{ID: "roles_delete", Name: "Delete Roles", Description: "Can delete roles", Category: "Roles", Resource: "roles", Action: "delete"},
		{ID: "users_read", Name: "View Users", Description: "Can view user list and details", Category: "Users", Resource: "users", Action: "read"},
		{ID: "users_write", Name: "Create/Edit Users", Description: "Can create and edit users", Category: "Users", Resource: "users", Action: "write"},
		{ID: "users_delete", Name: "Delete Users", Description: "Can delete users", Category: "Users", Resource: "users", Action: "delete"},
	}
}

// DefaultRoles roles incorporados. El rol "admin" es protegido por política:
// la capa de casos de uso rechaza su eliminación.
func DefaultRoles() []entity.Role {
	all := DefaultPermissions()
	created := seedDate("2024-01-01")

	pick := func(ids ...string) []entity.Permission {
		var out []entity.Permission
		for _, p := range all {
			for _, id := range ids {
				if p.ID == id {
					out = append(out, p)
				}
			}
		}
		return out
	}

	return []entity.Role{
		{
			ID:          "admin",
			Name:        "Administrator",
			Description: "Full access to all features and settings",
			Permissions: all,
			IsActive:    true,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "manager",
			Name:        "Manager",
			Description: "Manage products and basic operations",
			Permissions: pick("products_read", "products_write", "products_delete", "users_read"),
			IsActive:    true,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "employee",
			Name:        "Employee",
			Description: "Basic access to product information",
			Permissions: pick("products_read"),
			IsActive:    true,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}
}
