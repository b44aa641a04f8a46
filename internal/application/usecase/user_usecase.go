package usecase

import (
	"context"
	"fmt"

	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/domain/entity"
	"github.com/itael/inventory-products-api/internal/store"
)

// UserUseCase casos de uso CRUD para cuentas del panel, incluida la vista
// compuesta con el nombre del rol.
type UserUseCase struct {
	users *store.UserStore
	view  *store.UserRoleView
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users *store.UserStore, view *store.UserRoleView) *UserUseCase {
	return &UserUseCase{users: users, view: view}
}

// Create crea una cuenta tras verificar unicidad de username y email
// (sin distinguir mayúsculas). Devuelve domain.ErrDuplicate en conflicto.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if uc.users.ExistsByUsername(in.Username, "") {
		return nil, fmt.Errorf("%w: username ya registrado", domain.ErrDuplicate)
	}
	if uc.users.ExistsByEmail(in.Email, "") {
		return nil, fmt.Errorf("%w: email ya registrado", domain.ErrDuplicate)
	}
	user, err := uc.users.Create(ctx, entity.User{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		RoleID:    in.RoleID,
		IsActive:  in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(&user), nil
}

// GetByID obtiene una cuenta por ID; nil si no existe.
func (uc *UserUseCase) GetByID(id string) *dto.UserResponse {
	user, ok := uc.users.GetByID(id)
	if !ok {
		return nil
	}
	return toUserResponse(&user)
}

// Update fusiona el patch sobre la cuenta, verificando unicidad contra todas
// las cuentas menos la editada.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Username != nil && uc.users.ExistsByUsername(*in.Username, id) {
		return nil, fmt.Errorf("%w: username ya registrado", domain.ErrDuplicate)
	}
	if in.Email != nil && uc.users.ExistsByEmail(*in.Email, id) {
		return nil, fmt.Errorf("%w: email ya registrado", domain.ErrDuplicate)
	}
	user, err := uc.users.Update(ctx, id, func(u *entity.User) {
		if in.Username != nil {
			u.Username = *in.Username
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.FirstName != nil {
			u.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			u.LastName = *in.LastName
		}
		if in.RoleID != nil {
			u.RoleID = *in.RoleID
		}
		if in.IsActive != nil {
			u.IsActive = *in.IsActive
		}
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(&user), nil
}

// List devuelve el snapshot completo de cuentas.
func (uc *UserUseCase) List() *dto.UserListResponse {
	items := uc.users.Snapshot()
	out := make([]dto.UserResponse, 0, len(items))
	for i := range items {
		out = append(out, *toUserResponse(&items[i]))
	}
	return &dto.UserListResponse{Items: out, Total: len(out)}
}

// ListWithRoles devuelve la vista compuesta: cada cuenta con el nombre de su
// rol, o la etiqueta "Unknown Role" si la referencia quedó huérfana.
func (uc *UserUseCase) ListWithRoles() []dto.UserWithRoleResponse {
	items := uc.view.Snapshot()
	out := make([]dto.UserWithRoleResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.UserWithRoleResponse{
			UserResponse: *toUserResponse(&items[i].User),
			RoleName:     items[i].RoleName,
		})
	}
	return out
}

// Delete elimina una cuenta por ID.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.users.Delete(ctx, id)
}

// UsernameExists chequeo de unicidad para formularios de edición.
func (uc *UserUseCase) UsernameExists(username, excludeID string) bool {
	return uc.users.ExistsByUsername(username, excludeID)
}

// EmailExists chequeo de unicidad para formularios de edición.
func (uc *UserUseCase) EmailExists(email, excludeID string) bool {
	return uc.users.ExistsByEmail(email, excludeID)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		RoleID:      u.RoleID,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
