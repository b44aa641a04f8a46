package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound indica que la clave no existe en el almacén. No es un error
// de infraestructura: un miss de lectura es un resultado representable.
var ErrKeyNotFound = errors.New("clave no encontrada")

// Claves fijas de persistencia por colección (más sesión y preferencia de idioma).
const (
	KeyProducts    = "inventory_products"
	KeyUsers       = "inventory_users"
	KeyRoles       = "inventory_roles"
	KeyPermissions = "inventory_permissions"
	KeySession     = "currentUser"
	KeyLocale      = "selectedLanguage"
)

// KVStore define el puerto de persistencia durable clave→valor (DIP).
// Los valores son documentos JSON serializados; las fechas viajan como
// strings RFC3339 y se rehidratan al leer.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
