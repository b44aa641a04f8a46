package store

import (
	"context"
	"strings"

	"github.com/itael/inventory-products-api/internal/domain/entity"
	"github.com/itael/inventory-products-api/internal/domain/repository"
)

// ProductStore almacén de productos de helado.
type ProductStore struct {
	*Store[entity.Product, *entity.Product]
}

// NewProductStore construye el store con las semillas de productos.
func NewProductStore(ctx context.Context, opts Options) *ProductStore {
	if opts.Key == "" {
		opts.Key = repository.KeyProducts
	}
	return &ProductStore{New[entity.Product, *entity.Product](ctx, opts, DefaultProducts)}
}

// Search filtra el snapshot actual por nombre, descripción o código contable
// (subcadena, sin distinguir mayúsculas).
func (s *ProductStore) Search(query string) []entity.Product {
	q := strings.ToLower(query)
	var out []entity.Product
	for _, p := range s.Snapshot() {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Account), q) {
			out = append(out, p)
		}
	}
	return out
}
