package store

import (
	"context"

	"github.com/itael/inventory-products-api/internal/domain/entity"
	"github.com/itael/inventory-products-api/internal/domain/repository"
)

// RoleStore almacén de roles. No impone la protección del rol "admin": esa
// política vive en la capa de casos de uso.
type RoleStore struct {
	*Store[entity.Role, *entity.Role]
}

// NewRoleStore construye el store con las semillas de roles.
func NewRoleStore(ctx context.Context, opts Options) *RoleStore {
	if opts.Key == "" {
		opts.Key = repository.KeyRoles
	}
	return &RoleStore{New[entity.Role, *entity.Role](ctx, opts, DefaultRoles)}
}

// PermissionStore almacén del catálogo de permisos.
type PermissionStore struct {
	*Store[entity.Permission, *entity.Permission]
}

// NewPermissionStore construye el store con el catálogo sembrado.
func NewPermissionStore(ctx context.Context, opts Options) *PermissionStore {
	if opts.Key == "" {
		opts.Key = repository.KeyPermissions
	}
	return &PermissionStore{New[entity.Permission, *entity.Permission](ctx, opts, DefaultPermissions)}
}

// ByIDs devuelve las entradas del catálogo cuyos ids están en la lista,
// en el orden del catálogo. Ids desconocidos se omiten.
func (s *PermissionStore) ByIDs(ids []string) []entity.Permission {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []entity.Permission
	for _, p := range s.Snapshot() {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
