package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/domain/repository"
	"github.com/itael/inventory-products-api/internal/i18n"
	"github.com/itael/inventory-products-api/internal/infrastructure/kvstore"
)

func newTranslator(t *testing.T, kv repository.KVStore) *i18n.Translator {
	t.Helper()
	return i18n.New(context.Background(), kv, "", nil)
}

// Resolución básica en ambos locales.
func TestTranslate_ClaveConocida(t *testing.T) {
	tr := newTranslator(t, nil)

	assert.Equal(t, "Inventory Products Admin", tr.Translate("app.title"))

	require.NoError(t, tr.SetLocale(context.Background(), "es"))
	assert.Equal(t, "Administrador de Productos", tr.Translate("app.title"))
}

// Una clave desconocida se devuelve tal cual, nunca un error ni cadena vacía.
func TestTranslate_ClaveDesconocidaVerbatim(t *testing.T) {
	tr := newTranslator(t, nil)
	assert.Equal(t, "no.existe.esta.clave", tr.Translate("no.existe.esta.clave"))
}

// Sustitución de tokens {{nombre}}; tokens sin valor quedan tal cual.
func TestTranslateWithParams(t *testing.T) {
	tr := newTranslator(t, nil)

	got := tr.TranslateWithParams("products.deleteConfirm", map[string]string{"name": "Vanilla Supreme"})
	assert.Equal(t, "Are you sure you want to delete Vanilla Supreme?", got)

	sinValor := tr.TranslateWithParams("products.deleteConfirm", nil)
	assert.Contains(t, sinValor, "{{name}}", "sin valor el token queda tal cual")
}

func TestTranslateWithParams_Rol(t *testing.T) {
	tr := newTranslator(t, nil)
	require.NoError(t, tr.SetLocale(context.Background(), "es"))

	got := tr.TranslateWithParams("roles.protectedRole", map[string]string{"role": "admin"})
	assert.Equal(t, "El rol admin no puede eliminarse", got)
}

// SetLocale acepta variantes regionales y las normaliza al código base.
func TestSetLocale_NormalizaVariantes(t *testing.T) {
	ctx := context.Background()
	tr := newTranslator(t, nil)

	require.NoError(t, tr.SetLocale(ctx, "es-CO"))
	assert.Equal(t, "es", tr.Locale())

	require.NoError(t, tr.SetLocale(ctx, "en_US"))
	assert.Equal(t, "en", tr.Locale())
}

// Un locale no soportado se rechaza sin cambiar el vigente.
func TestSetLocale_NoSoportado(t *testing.T) {
	ctx := context.Background()
	tr := newTranslator(t, nil)

	err := tr.SetLocale(ctx, "zz-ZZ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "en", tr.Locale())
}

// La preferencia de idioma se persiste y se restaura en una nueva instancia.
func TestSetLocale_PersisteYRestaura(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	first := newTranslator(t, kv)
	require.NoError(t, first.SetLocale(ctx, "es"))

	second := newTranslator(t, kv)
	assert.Equal(t, "es", second.Locale(), "la preferencia persistida se restaura al construir")
}

// All devuelve el mapa completo del locale; locale desconocido cae al
// por defecto.
func TestAll(t *testing.T) {
	en := i18n.All("en")
	es := i18n.All("es")
	assert.Equal(t, len(en), len(es), "ambos locales cubren las mismas claves")
	assert.Equal(t, "Productos", es["nav.products"])

	fallback := i18n.All("zz")
	assert.Equal(t, en["app.title"], fallback["app.title"])
}
