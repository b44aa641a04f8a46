package store

import (
	"context"
	"strings"
	"time"

	"github.com/itael/inventory-products-api/internal/domain/entity"
	"github.com/itael/inventory-products-api/internal/domain/repository"
)

// UserStore almacén de cuentas del panel con chequeos de unicidad.
type UserStore struct {
	*Store[entity.User, *entity.User]
}

// NewUserStore construye el store con las semillas de usuarios.
func NewUserStore(ctx context.Context, opts Options) *UserStore {
	if opts.Key == "" {
		opts.Key = repository.KeyUsers
	}
	return &UserStore{New[entity.User, *entity.User](ctx, opts, DefaultUsers)}
}

// ExistsByUsername indica si otro usuario ya usa ese username (sin distinguir
// mayúsculas). excludeID permite a los formularios de edición chequear contra
// todos menos el usuario en edición.
func (s *UserStore) ExistsByUsername(username, excludeID string) bool {
	for _, u := range s.Snapshot() {
		if strings.EqualFold(u.Username, username) && u.ID != excludeID {
			return true
		}
	}
	return false
}

// ExistsByEmail indica si otro usuario ya usa ese email (sin distinguir
// mayúsculas), con el mismo parámetro de exclusión.
func (s *UserStore) ExistsByEmail(email, excludeID string) bool {
	for _, u := range s.Snapshot() {
		if strings.EqualFold(u.Email, email) && u.ID != excludeID {
			return true
		}
	}
	return false
}

// FindByUsername devuelve el usuario con ese username exacto (sin distinguir
// mayúsculas).
func (s *UserStore) FindByUsername(username string) (entity.User, bool) {
	for _, u := range s.Snapshot() {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return entity.User{}, false
}

// TouchLastLogin estampa lastLoginAt en la cuenta indicada. Se llama en el
// login cuando el principal corresponde a una cuenta del store.
func (s *UserStore) TouchLastLogin(ctx context.Context, id string, when time.Time) error {
	_, err := s.Update(ctx, id, func(u *entity.User) {
		u.LastLoginAt = &when
	})
	return err
}
