package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/application/usecase"
	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/store"
)

func newRoleUC(t *testing.T) (*usecase.RoleUseCase, *store.RoleStore) {
	t.Helper()
	ctx := context.Background()
	roles := store.NewRoleStore(ctx, store.Options{})
	permissions := store.NewPermissionStore(ctx, store.Options{})
	return usecase.NewRoleUseCase(roles, permissions), roles
}

// El rol incorporado "admin" es indeleble: la política lo rechaza antes de
// llegar al store.
func TestRoleDelete_AdminProtegido(t *testing.T) {
	uc, roles := newRoleUC(t)

	err := uc.Delete(context.Background(), "admin")
	assert.ErrorIs(t, err, domain.ErrProtectedRole)

	_, ok := roles.GetByID("admin")
	assert.True(t, ok, "el rol admin debe seguir existiendo")
}

// Cualquier otro rol sí se puede eliminar.
func TestRoleDelete_OtrosRolesEliminables(t *testing.T) {
	uc, roles := newRoleUC(t)

	require.NoError(t, uc.Delete(context.Background(), "employee"))
	_, ok := roles.GetByID("employee")
	assert.False(t, ok)
}

// Crear un rol resuelve los ids de permisos contra el catálogo y embebe
// copias completas; ids desconocidos se ignoran.
func TestRoleCreate_ResuelvePermisos(t *testing.T) {
	uc, _ := newRoleUC(t)

	out, err := uc.Create(context.Background(), dto.CreateRoleRequest{
		Name:          "Auditor",
		Description:   "Read-only access",
		PermissionIDs: []string{"products_read", "users_read", "id-desconocido"},
		IsActive:      true,
	})
	require.NoError(t, err)

	require.Len(t, out.Permissions, 2, "solo los ids conocidos se embeben")
	assert.Equal(t, "products_read", out.Permissions[0].ID)
	assert.Equal(t, "View Products", out.Permissions[0].Name, "se embebe la copia completa, no solo el id")
}

// Actualizar con permissionIds reemplaza la lista embebida completa.
func TestRoleUpdate_ReemplazaPermisos(t *testing.T) {
	uc, _ := newRoleUC(t)

	ids := []string{"products_read"}
	out, err := uc.Update(context.Background(), "manager", dto.UpdateRoleRequest{PermissionIDs: &ids})
	require.NoError(t, err)

	require.Len(t, out.Permissions, 1)
	assert.Equal(t, "products_read", out.Permissions[0].ID)
}

// El catálogo de permisos admite su propio CRUD.
func TestPermisos_CRUD(t *testing.T) {
	ctx := context.Background()
	uc, _ := newRoleUC(t)

	created, err := uc.CreatePermission(ctx, dto.CreatePermissionRequest{
		Name: "Export Products", Description: "Can export the catalog",
		Category: "Products", Resource: "products", Action: "export",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	nombre := "Export Catalog"
	updated, err := uc.UpdatePermission(ctx, created.ID, dto.UpdatePermissionRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Export Catalog", updated.Name)

	require.NoError(t, uc.DeletePermission(ctx, created.ID))
	assert.ErrorIs(t, uc.DeletePermission(ctx, created.ID), domain.ErrNotFound)

	// El catálogo semilla trae 9 entradas y quedó igual.
	assert.Equal(t, 9, uc.ListPermissions().Total)
}
