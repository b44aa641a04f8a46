package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itael/inventory-products-api/internal/application/auth"
	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/application/usecase"
	"github.com/itael/inventory-products-api/internal/i18n"
	"github.com/itael/inventory-products-api/internal/infrastructure/kvstore"
	apphttp "github.com/itael/inventory-products-api/internal/interfaces/http"
	"github.com/itael/inventory-products-api/internal/store"
)

// buildAPI levanta la aplicación completa sobre un almacén en memoria, sin
// latencia simulada.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	kv := kvstore.NewMemory()

	opts := store.Options{KV: kv}
	products := store.NewProductStore(ctx, opts)
	users := store.NewUserStore(ctx, opts)
	roles := store.NewRoleStore(ctx, opts)
	permissions := store.NewPermissionStore(ctx, opts)

	view := store.NewUserRoleView(users, roles)
	t.Cleanup(view.Close)

	authUC := auth.New(ctx, auth.Options{
		Users: users,
		KV:    kv,
		JWT:   auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(products),
		UserUC:      usecase.NewUserUseCase(users, view),
		RoleUC:      usecase.NewRoleUseCase(roles, permissions),
		DashboardUC: usecase.NewDashboardUseCase(products, users, roles, permissions),
		AuthUC:      authUC,
		Translator:  i18n.New(ctx, kv, "en", nil),
		JWTSecret:   testJWTSecret,
	})
	return app
}

// login hace el POST de credenciales y devuelve el header Authorization.
func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	body, _ := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login debe funcionar")

	var principal dto.AuthUserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&principal))
	require.NotEmpty(t, principal.Token)
	return "Bearer " + principal.Token
}

func do(t *testing.T, app *fiber.App, method, path, authHeader string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujos de la API
// ──────────────────────────────────────────────────────────────────────────────

// Credenciales inválidas → 401 con código estable.
func TestAPI_LoginInvalido(t *testing.T) {
	app := buildAPI(t)

	resp := do(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "mala"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INVALID_CREDENTIALS", out.Code)
}

// Ciclo completo de productos como admin: listar, crear, actualizar, borrar.
func TestAPI_ProductosCRUD(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "admin", "admin123")

	resp := do(t, app, http.MethodGet, "/api/products/", token, nil)
	var list dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Equal(t, 3, list.Total, "las semillas traen 3 productos")

	resp = do(t, app, http.MethodPost, "/api/products/", token, map[string]any{
		"name":              "Mint Chip",
		"account":           "PRD-020",
		"originalPrice":     "10.00",
		"discount":          "20",
		"unitOfMeasurement": "pint",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, "8.00", created.Price.StringFixed(2), "el precio de venta es derivado")

	resp = do(t, app, http.MethodPut, "/api/products/"+created.ID, token, map[string]any{"name": "Mint Chocolate Chip"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodDelete, "/api/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodDelete, "/api/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "borrar dos veces el mismo id → 404")
	resp.Body.Close()
}

// El código contable se valida con el patrón XXX-###.
func TestAPI_ProductoCuentaInvalida(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "admin", "admin123")

	resp := do(t, app, http.MethodPost, "/api/products/", token, map[string]any{
		"name":              "Mal formado",
		"account":           "producto-1",
		"originalPrice":     "10.00",
		"unitOfMeasurement": "pint",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// El empleado solo lee productos: crear → 403.
func TestAPI_EmpleadoNoPuedeCrear(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "employee", "employee123")

	resp := do(t, app, http.MethodGet, "/api/products/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodPost, "/api/products/", token, map[string]any{
		"name": "Prohibido", "account": "PRD-030", "originalPrice": "5", "unitOfMeasurement": "pint",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

// Username duplicado (sin distinguir mayúsculas) → 409.
func TestAPI_UsuarioDuplicado(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "admin", "admin123")

	resp := do(t, app, http.MethodPost, "/api/users/", token, map[string]any{
		"username": "Admin", "email": "otro@inventory.com",
		"firstName": "Otro", "lastName": "Admin", "roleId": "admin", "isActive": true,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// La vista compuesta expone el nombre del rol y la etiqueta centinela para
// referencias huérfanas.
func TestAPI_UsuariosConRoles(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "admin", "admin123")

	resp := do(t, app, http.MethodDelete, "/api/roles/employee", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodGet, "/api/users/with-roles", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []dto.UserWithRoleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	resp.Body.Close()

	byUsername := make(map[string]string, len(rows))
	for _, row := range rows {
		byUsername[row.Username] = row.RoleName
	}
	assert.Equal(t, "Administrator", byUsername["admin"])
	assert.Equal(t, "Unknown Role", byUsername["employee"])
}

// El rol admin es indeleble → 409 con código estable.
func TestAPI_RolAdminProtegido(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "admin", "admin123")

	resp := do(t, app, http.MethodDelete, "/api/roles/admin", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "PROTECTED_ROLE", out.Code)
}

// Las traducciones son públicas: la pantalla de login las necesita.
func TestAPI_TraduccionesPublicas(t *testing.T) {
	app := buildAPI(t)

	resp := do(t, app, http.MethodGet, "/api/i18n/translations?lang=es", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var table map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&table))
	assert.Equal(t, "Productos", table["nav.products"])
}

// El dashboard refleja los conteos actuales.
func TestAPI_Dashboard(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "admin", "admin123")

	resp := do(t, app, http.MethodGet, "/api/dashboard", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 3, out.Products)
	assert.Equal(t, 3, out.Users)
	assert.Equal(t, 3, out.Roles)
	assert.Equal(t, 9, out.Permissions)
}
