package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itael/inventory-products-api/internal/application/auth"
	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/domain/repository"
	"github.com/itael/inventory-products-api/internal/infrastructure/kvstore"
	"github.com/itael/inventory-products-api/internal/store"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "inventory-products-test"
)

func newAuth(t *testing.T, kv repository.KVStore) *auth.UseCase {
	t.Helper()
	return auth.New(context.Background(), auth.Options{
		KV:  kv,
		JWT: auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Credenciales correctas → principal con su lista plana de permisos y token.
func TestLogin_AdminCredencialesCorrectas(t *testing.T) {
	uc := newAuth(t, nil)

	principal, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "admin", principal.Username)
	assert.NotEmpty(t, principal.Token, "el login emite un token de sesión")
	assert.Contains(t, principal.Permissions, "products.delete")
	assert.Contains(t, principal.Permissions, "users.create")
	assert.True(t, uc.IsAuthenticated())
}

// Contraseña equivocada → ErrInvalidCredentials y estado anónimo intacto.
func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuth(t, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.False(t, uc.IsAuthenticated())
}

// Usuario desconocido → el mismo error, sin distinguir la causa.
func TestLogin_UsuarioDesconocido(t *testing.T) {
	uc := newAuth(t, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// El username distingue mayúsculas: "Admin" no es "admin".
func TestLogin_UsernameExacto(t *testing.T) {
	uc := newAuth(t, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "Admin", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// El manager tiene permisos de productos pero no de usuarios (más allá de
// lectura).
func TestLogin_PermisosDeManager(t *testing.T) {
	uc := newAuth(t, nil)

	principal, err := uc.Login(context.Background(), dto.LoginRequest{Username: "manager", Password: "manager123"})
	require.NoError(t, err)

	assert.Contains(t, principal.Permissions, "products.delete")
	assert.Contains(t, principal.Permissions, "users.read")
	assert.NotContains(t, principal.Permissions, "users.delete")
}

// Un login correcto estampa lastLoginAt en la cuenta correspondiente.
func TestLogin_EstampaUltimoAcceso(t *testing.T) {
	ctx := context.Background()
	users := store.NewUserStore(ctx, store.Options{})
	uc := auth.New(ctx, auth.Options{
		Users: users,
		JWT:   auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
	})

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "employee", Password: "employee123"})
	require.NoError(t, err)

	account, ok := users.FindByUsername("employee")
	require.True(t, ok)
	require.NotNil(t, account.LastLoginAt, "el login debe estampar lastLoginAt")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión persistida
// ──────────────────────────────────────────────────────────────────────────────

// El principal se persiste bajo la clave de sesión y se restaura en una nueva
// instancia del componente.
func TestSesion_RestauraDePersistencia(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	first := newAuth(t, kv)
	_, err := first.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	second := newAuth(t, kv)
	require.True(t, second.IsAuthenticated(), "la sesión persistida se restaura al construir")
	assert.Equal(t, "admin", second.Current().Username)
}

// Una sesión persistida corrupta se descarta en silencio: estado anónimo.
func TestSesion_PersistenciaCorruptaSeDescarta(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(ctx, repository.KeySession, []byte("no-es-json{")))

	uc := newAuth(t, kv)
	assert.False(t, uc.IsAuthenticated())
}

// Logout limpia el estado y la persistencia; repetirlo no es error.
func TestLogout_Idempotente(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	uc := newAuth(t, kv)

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	uc.Logout(ctx)
	assert.False(t, uc.IsAuthenticated())
	assert.Nil(t, uc.Current())

	_, err = kv.Get(ctx, repository.KeySession)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound, "logout borra la sesión persistida")

	uc.Logout(ctx) // segunda vez, sin sesión: sigue sin ser error
	assert.False(t, uc.IsAuthenticated())
}

// ──────────────────────────────────────────────────────────────────────────────
// Chequeos de permiso
// ──────────────────────────────────────────────────────────────────────────────

// Anónimo nunca tiene permisos.
func TestHasPermission_AnonimoSiempreFalse(t *testing.T) {
	uc := newAuth(t, nil)

	assert.False(t, uc.HasPermission("products.read"))
	assert.False(t, uc.HasAnyPermission([]string{"products.read", "users.read"}))
}

func TestHasPermission_Autenticado(t *testing.T) {
	uc := newAuth(t, nil)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "employee", Password: "employee123"})
	require.NoError(t, err)

	assert.True(t, uc.HasPermission("products.read"))
	assert.False(t, uc.HasPermission("products.delete"))
	assert.True(t, uc.HasAnyPermission([]string{"products.delete", "products.read"}))
	assert.False(t, uc.HasAnyPermission([]string{"products.delete", "users.delete"}))
}
