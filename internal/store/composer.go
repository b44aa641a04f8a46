package store

import (
	"sync"

	"github.com/itael/inventory-products-api/internal/domain/entity"
)

// UserRoleView es el modelo de lectura compuesto usuarios×roles: se suscribe a
// ambos stores, recompone la vista cada vez que cualquiera emite y la difunde
// a sus propios suscriptores. Cada fila de usuarios aparece siempre en la
// salida; una referencia de rol huérfana recibe la etiqueta centinela
// "Unknown Role" en lugar de descartarse.
type UserRoleView struct {
	mu        sync.Mutex
	users     []entity.User
	roles     []entity.Role
	current   []entity.UserWithRole
	listeners map[int]func([]entity.UserWithRole)
	nextSub   int

	cancelUsers func()
	cancelRoles func()
}

// NewUserRoleView construye la vista y queda suscrita a ambos stores.
func NewUserRoleView(users *UserStore, roles *RoleStore) *UserRoleView {
	v := &UserRoleView{listeners: make(map[int]func([]entity.UserWithRole))}

	// Las primeras emisiones llegan de forma síncrona dentro de Subscribe,
	// así que current queda poblado antes de retornar.
	v.cancelUsers = users.Subscribe(func(snapshot []entity.User) {
		v.mu.Lock()
		v.users = snapshot
		v.recomputeLocked()
		v.mu.Unlock()
	})
	v.cancelRoles = roles.Subscribe(func(snapshot []entity.Role) {
		v.mu.Lock()
		v.roles = snapshot
		v.recomputeLocked()
		v.mu.Unlock()
	})
	return v
}

// Snapshot devuelve una copia de la vista compuesta actual.
func (v *UserRoleView) Snapshot() []entity.UserWithRole {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]entity.UserWithRole(nil), v.current...)
}

// Subscribe registra un listener con emisión inmediata del estado actual.
// Devuelve la función de cancelación.
func (v *UserRoleView) Subscribe(fn func([]entity.UserWithRole)) func() {
	v.mu.Lock()
	id := v.nextSub
	v.nextSub++
	v.listeners[id] = fn
	fn(append([]entity.UserWithRole(nil), v.current...))
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}

// Close cancela las suscripciones a los stores de origen.
func (v *UserRoleView) Close() {
	v.cancelUsers()
	v.cancelRoles()
}

// recomputeLocked une cada usuario con el nombre de su rol. Requiere v.mu.
func (v *UserRoleView) recomputeLocked() {
	names := make(map[string]string, len(v.roles))
	for _, r := range v.roles {
		names[r.ID] = r.Name
	}

	out := make([]entity.UserWithRole, 0, len(v.users))
	for _, u := range v.users {
		name, ok := names[u.RoleID]
		if !ok {
			name = entity.UnknownRoleLabel
		}
		out = append(out, entity.UserWithRole{User: u, RoleName: name})
	}
	v.current = out

	for _, fn := range v.listeners {
		fn(append([]entity.UserWithRole(nil), out...))
	}
}
