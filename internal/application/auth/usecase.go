// Package auth implementa el componente de sesión del panel: principal actual
// (o ninguno) y consultas de pertenencia de permisos. No es una frontera de
// seguridad real — la tabla de credenciales es fija y sirve para demo y
// control de acceso de la UI.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/domain/entity"
	"github.com/itael/inventory-products-api/internal/domain/repository"
	"github.com/itael/inventory-products-api/internal/store"
	"github.com/itael/inventory-products-api/pkg/jwt"
	"github.com/itael/inventory-products-api/pkg/logger"
)

// JWTConfig configuración para la generación del token de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// credential entrada de la tabla fija de credenciales.
type credential struct {
	id           string
	username     string
	passwordHash []byte
	email        string
	firstName    string
	lastName     string
	permissions  []string
}

// mustHash hashea una contraseña de la tabla fija. MinCost: son credenciales
// de demo, no hay nada que proteger y el arranque no debe costar.
func mustHash(password string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return h
}

// defaultCredentials tabla fija de acceso, alineada con las cuentas sembradas.
func defaultCredentials() []credential {
	return []credential{
		{
			id:           "1",
			username:     "admin",
			passwordHash: mustHash("admin123"),
			email:        "admin@inventory.com",
			firstName:    "Admin",
			lastName:     "User",
			permissions: []string{
				"products.create", "products.read", "products.update", "products.delete",
				"roles.create", "roles.read", "roles.update", "roles.delete",
				"users.create", "users.read", "users.update", "users.delete",
				"permissions.update", "dashboard.read",
			},
		},
		{
			id:           "2",
			username:     "manager",
			passwordHash: mustHash("manager123"),
			email:        "manager@inventory.com",
			firstName:    "Manager",
			lastName:     "User",
			permissions: []string{
				"products.create", "products.read", "products.update", "products.delete",
				"users.read", "dashboard.read",
			},
		},
		{
			id:           "3",
			username:     "employee",
			passwordHash: mustHash("employee123"),
			email:        "employee@inventory.com",
			firstName:    "Employee",
			lastName:     "User",
			permissions: []string{"products.read", "roles.read", "dashboard.read"},
		},
	}
}

// UseCase es el componente de sesión: dos estados, anónimo o autenticado con
// un principal. El principal se persiste bajo la clave de sesión y se restaura
// al construir, aceptado tal cual (sin chequeo de expiración).
type UseCase struct {
	mu          sync.RWMutex
	current     *entity.AuthUser
	credentials []credential

	users   *store.UserStore
	kv      repository.KVStore
	jwtCfg  JWTConfig
	latency time.Duration
	log     *logger.Logger
}

// Options dependencias del componente de sesión.
type Options struct {
	Users   *store.UserStore   // para estampar lastLoginAt; puede ser nil
	KV      repository.KVStore // nil = sesión no persistida
	JWT     JWTConfig
	Latency time.Duration
	Logger  *logger.Logger
}

// New construye el componente y restaura el principal persistido si existe.
func New(ctx context.Context, opts Options) *UseCase {
	uc := &UseCase{
		credentials: defaultCredentials(),
		users:       opts.Users,
		kv:          opts.KV,
		jwtCfg:      opts.JWT,
		latency:     opts.Latency,
		log:         opts.Logger,
	}
	if uc.log == nil {
		uc.log = logger.Nop()
	}
	uc.restore(ctx)
	return uc
}

func (uc *UseCase) restore(ctx context.Context) {
	if uc.kv == nil {
		return
	}
	raw, err := uc.kv.Get(ctx, repository.KeySession)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			uc.log.Warn().Err(err).Msg("lectura de sesión persistida falló")
		}
		return
	}
	var principal entity.AuthUser
	if err := json.Unmarshal(raw, &principal); err != nil {
		uc.log.Warn().Err(err).Msg("sesión persistida corrupta, se descarta")
		return
	}
	uc.current = &principal
}

// Login busca el par username+password exacto en la tabla fija. Sin
// coincidencia devuelve domain.ErrInvalidCredentials; con coincidencia
// construye el principal con un token recién firmado, lo persiste y pasa al
// estado autenticado.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthUserResponse, error) {
	var match *credential
	for i := range uc.credentials {
		c := &uc.credentials[i]
		if c.username != in.Username {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.passwordHash, []byte(in.Password)) == nil {
			match = c
		}
		break
	}
	if match == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, match.id, match.username, match.permissions, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	principal := &entity.AuthUser{
		ID:          match.id,
		Username:    match.username,
		Email:       match.email,
		FirstName:   match.firstName,
		LastName:    match.lastName,
		Permissions: append([]string(nil), match.permissions...),
		Token:       token,
	}

	uc.mu.Lock()
	uc.current = principal
	uc.mu.Unlock()

	if uc.kv != nil {
		raw, err := json.Marshal(principal)
		if err == nil {
			err = uc.kv.Set(ctx, repository.KeySession, raw)
		}
		if err != nil {
			uc.log.Warn().Err(err).Msg("persistencia de sesión falló")
		}
	}

	// Estampar lastLoginAt en la cuenta correspondiente si existe.
	if uc.users != nil {
		if account, ok := uc.users.FindByUsername(match.username); ok {
			if err := uc.users.TouchLastLogin(ctx, account.ID, time.Now()); err != nil {
				uc.log.Warn().Err(err).Str("user", account.ID).Msg("no se pudo estampar lastLoginAt")
			}
		}
	}

	uc.wait(ctx)
	return toAuthResponse(principal), nil
}

// Logout limpia el principal persistido y vuelve al estado anónimo.
// Incondicional e idempotente.
func (uc *UseCase) Logout(ctx context.Context) {
	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()

	if uc.kv != nil {
		if err := uc.kv.Delete(ctx, repository.KeySession); err != nil {
			uc.log.Warn().Err(err).Msg("borrado de sesión persistida falló")
		}
	}
}

// IsAuthenticated indica si hay un principal activo.
func (uc *UseCase) IsAuthenticated() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current != nil
}

// Current devuelve el principal actual o nil.
func (uc *UseCase) Current() *dto.AuthUserResponse {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.current == nil {
		return nil
	}
	return toAuthResponse(uc.current)
}

// HasPermission responde la pertenencia de un permiso; anónimo siempre false.
func (uc *UseCase) HasPermission(permission string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current != nil && uc.current.HasPermission(permission)
}

// HasAnyPermission responde si el principal posee alguno de los permisos;
// anónimo siempre false.
func (uc *UseCase) HasAnyPermission(permissions []string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current != nil && uc.current.HasAnyPermission(permissions)
}

func (uc *UseCase) wait(ctx context.Context) {
	if uc.latency <= 0 {
		return
	}
	select {
	case <-time.After(uc.latency):
	case <-ctx.Done():
	}
}

func toAuthResponse(p *entity.AuthUser) *dto.AuthUserResponse {
	return &dto.AuthUserResponse{
		ID:          p.ID,
		Username:    p.Username,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Permissions: append([]string(nil), p.Permissions...),
		Token:       p.Token,
	}
}
