package kvstore

import (
	"context"
	"sync"

	"github.com/itael/inventory-products-api/internal/domain/repository"
)

// Memory es un adaptador clave→valor en memoria. Se usa en tests y como
// respaldo cuando no hay contexto de almacenamiento durable: todo se pierde
// al terminar el proceso.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory crea un almacén en memoria vacío.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get devuelve el valor de la clave o repository.ErrKeyNotFound.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

// Set guarda el valor bajo la clave.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

// Delete elimina la clave. Borrar una clave inexistente no es error.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
