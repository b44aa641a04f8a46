// Package i18n implementa el lookup de localización del panel: una tabla
// estática clave→texto por locale, consultada de forma síncrona, con
// sustitución simple de tokens {{nombre}}.
package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/domain/repository"
	"github.com/itael/inventory-products-api/pkg/logger"
)

// DefaultLocale locale de respaldo cuando una clave no tiene el solicitado.
const DefaultLocale = "en"

// supported locales soportados, en orden de preferencia de matching.
var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Translator resuelve claves de traducción y mantiene la preferencia de
// idioma, persistida bajo la clave de locale.
type Translator struct {
	mu     sync.RWMutex
	locale string

	kv  repository.KVStore
	log *logger.Logger
}

// New construye el traductor restaurando la preferencia persistida; un valor
// ausente o inválido cae al locale por defecto.
func New(ctx context.Context, kv repository.KVStore, defaultLocale string, log *logger.Logger) *Translator {
	if log == nil {
		log = logger.Nop()
	}
	locale := canonical(defaultLocale)

	if kv != nil {
		raw, err := kv.Get(ctx, repository.KeyLocale)
		switch {
		case err == nil:
			if saved, ok := normalize(string(raw)); ok {
				locale = saved
			}
		case !errors.Is(err, repository.ErrKeyNotFound):
			log.Warn().Err(err).Msg("lectura de preferencia de idioma falló")
		}
	}

	return &Translator{locale: locale, kv: kv, log: log}
}

// Locale devuelve el locale actual.
func (t *Translator) Locale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.locale
}

// SetLocale cambia el locale actual si es válido y persiste la preferencia.
func (t *Translator) SetLocale(ctx context.Context, locale string) error {
	norm, ok := normalize(locale)
	if !ok {
		return fmt.Errorf("%w: locale no soportado: %s", domain.ErrInvalidInput, locale)
	}

	t.mu.Lock()
	t.locale = norm
	t.mu.Unlock()

	if t.kv != nil {
		if err := t.kv.Set(ctx, repository.KeyLocale, []byte(norm)); err != nil {
			t.log.Warn().Err(err).Msg("persistencia de preferencia de idioma falló")
		}
	}
	return nil
}

// Translate resuelve una clave en el locale actual. Clave desconocida →
// la clave tal cual; locale sin texto para una clave conocida → locale por
// defecto.
func (t *Translator) Translate(key string) string {
	return TranslateTo(key, t.Locale())
}

// TranslateWithParams resuelve la clave y sustituye los tokens {{nombre}} con
// los valores dados. Tokens sin valor quedan tal cual.
func (t *Translator) TranslateWithParams(key string, params map[string]string) string {
	result := t.Translate(key)
	for name, value := range params {
		result = strings.ReplaceAll(result, "{{"+name+"}}", value)
	}
	return result
}

// All devuelve el mapa completo clave→texto para el locale dado (para que la
// UI cargue su tabla de strings de una vez).
func All(locale string) map[string]string {
	norm, ok := normalize(locale)
	if !ok {
		norm = DefaultLocale
	}
	out := make(map[string]string, len(catalog))
	for key := range catalog {
		out[key] = TranslateTo(key, norm)
	}
	return out
}

// TranslateTo resuelve una clave en un locale concreto (función pura).
func TranslateTo(key, locale string) string {
	entry, ok := catalog[key]
	if !ok {
		return key
	}
	if text, ok := entry[locale]; ok && text != "" {
		return text
	}
	if text, ok := entry[DefaultLocale]; ok {
		return text
	}
	return key
}

// normalize valida un código de locale arbitrario ("es", "es-CO", "en_US")
// contra los soportados y devuelve el código base canónico.
func normalize(locale string) (string, bool) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	base, _ := supported[idx].Base()
	return base.String(), true
}

func canonical(locale string) string {
	if norm, ok := normalize(locale); ok {
		return norm
	}
	return DefaultLocale
}
