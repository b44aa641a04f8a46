package usecase

import (
	"context"

	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/domain/entity"
	"github.com/itael/inventory-products-api/internal/store"
)

// RoleUseCase casos de uso de roles y del catálogo de permisos. Aquí vive la
// política del rol protegido: el store de roles no impone ninguna restricción,
// la eliminación del rol "admin" se rechaza antes de tocar el store.
type RoleUseCase struct {
	roles       *store.RoleStore
	permissions *store.PermissionStore
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roles *store.RoleStore, permissions *store.PermissionStore) *RoleUseCase {
	return &RoleUseCase{roles: roles, permissions: permissions}
}

// Create crea un rol resolviendo los ids de permisos contra el catálogo y
// embebiendo copias.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roles.Create(ctx, entity.Role{
		Name:        in.Name,
		Description: in.Description,
		Permissions: uc.permissions.ByIDs(in.PermissionIDs),
		IsActive:    in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	return toRoleResponse(&role), nil
}

// GetByID obtiene un rol por ID; nil si no existe.
func (uc *RoleUseCase) GetByID(id string) *dto.RoleResponse {
	role, ok := uc.roles.GetByID(id)
	if !ok {
		return nil
	}
	return toRoleResponse(&role)
}

// Update fusiona el patch sobre el rol; si se envían permissionIds se
// reemplaza la lista embebida completa.
func (uc *RoleUseCase) Update(ctx context.Context, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roles.Update(ctx, id, func(r *entity.Role) {
		if in.Name != nil {
			r.Name = *in.Name
		}
		if in.Description != nil {
			r.Description = *in.Description
		}
		if in.PermissionIDs != nil {
			r.Permissions = uc.permissions.ByIDs(*in.PermissionIDs)
		}
		if in.IsActive != nil {
			r.IsActive = *in.IsActive
		}
	})
	if err != nil {
		return nil, err
	}
	return toRoleResponse(&role), nil
}

// List devuelve el snapshot completo de roles.
func (uc *RoleUseCase) List() *dto.RoleListResponse {
	items := uc.roles.Snapshot()
	out := make([]dto.RoleResponse, 0, len(items))
	for i := range items {
		out = append(out, *toRoleResponse(&items[i]))
	}
	return &dto.RoleListResponse{Items: out, Total: len(out)}
}

// Delete elimina un rol. El rol incorporado "admin" está protegido por
// política y se rechaza sin llegar al store.
func (uc *RoleUseCase) Delete(ctx context.Context, id string) error {
	if id == entity.AdminRoleID {
		return domain.ErrProtectedRole
	}
	return uc.roles.Delete(ctx, id)
}

// ListPermissions devuelve el catálogo completo.
func (uc *RoleUseCase) ListPermissions() *dto.PermissionListResponse {
	items := uc.permissions.Snapshot()
	return &dto.PermissionListResponse{Items: items, Total: len(items)}
}

// CreatePermission añade una entrada al catálogo.
func (uc *RoleUseCase) CreatePermission(ctx context.Context, in dto.CreatePermissionRequest) (*entity.Permission, error) {
	permission, err := uc.permissions.Create(ctx, entity.Permission{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Resource:    in.Resource,
		Action:      in.Action,
	})
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

// UpdatePermission edita una entrada del catálogo.
func (uc *RoleUseCase) UpdatePermission(ctx context.Context, id string, in dto.UpdatePermissionRequest) (*entity.Permission, error) {
	permission, err := uc.permissions.Update(ctx, id, func(p *entity.Permission) {
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Resource != nil {
			p.Resource = *in.Resource
		}
		if in.Action != nil {
			p.Action = *in.Action
		}
	})
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

// DeletePermission elimina una entrada del catálogo.
func (uc *RoleUseCase) DeletePermission(ctx context.Context, id string) error {
	return uc.permissions.Delete(ctx, id)
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
