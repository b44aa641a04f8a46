package usecase

import (
	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/store"
)

// DashboardUseCase resumen de conteos para el panel principal.
type DashboardUseCase struct {
	products    *store.ProductStore
	users       *store.UserStore
	roles       *store.RoleStore
	permissions *store.PermissionStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products *store.ProductStore, users *store.UserStore, roles *store.RoleStore, permissions *store.PermissionStore) *DashboardUseCase {
	return &DashboardUseCase{products: products, users: users, roles: roles, permissions: permissions}
}

// Summary devuelve los conteos actuales de cada colección.
func (uc *DashboardUseCase) Summary() *dto.DashboardResponse {
	return &dto.DashboardResponse{
		Products:    uc.products.Len(),
		Users:       uc.users.Len(),
		Roles:       uc.roles.Len(),
		Permissions: uc.permissions.Len(),
	}
}
