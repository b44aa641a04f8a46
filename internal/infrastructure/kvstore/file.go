package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/itael/inventory-products-api/internal/domain/repository"
)

// File persiste cada clave como un documento JSON en un archivo propio dentro
// de un directorio (el análogo local del almacén del navegador). Las
// escrituras son atómicas vía archivo temporal + rename.
type File struct {
	dir string
	mu  sync.Mutex
}

// NewFile crea el adaptador sobre el directorio indicado, creándolo si no existe.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &File{dir: dir}, nil
}

// Get lee el documento de la clave o repository.ErrKeyNotFound si no existe.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrKeyNotFound
		}
		return nil, err
	}
	return b, nil
}

// Set escribe el documento de forma atómica.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	dst := f.path(key)
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// Delete elimina el documento de la clave. Borrar una clave inexistente no es error.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
