package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/itael/inventory-products-api/internal/application/dto"
	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/domain/entity"
	"github.com/itael/inventory-products-api/internal/store"
)

// ProductUseCase casos de uso CRUD para productos de helado.
type ProductUseCase struct {
	products *store.ProductStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products *store.ProductStore) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create valida los montos y crea el producto. El precio de venta no se
// recibe: es derivado del precio original y el descuento.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateAmounts(in.OriginalPrice, in.Discount); err != nil {
		return nil, err
	}
	product, err := uc.products.Create(ctx, entity.Product{
		Name:          in.Name,
		Description:   in.Description,
		Account:       in.Account,
		OriginalPrice: in.OriginalPrice,
		Discount:      in.Discount,
		UnitOfMeasure: in.UnitOfMeasurement,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(&product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) *dto.ProductResponse {
	product, ok := uc.products.GetByID(id)
	if !ok {
		return nil
	}
	return toProductResponse(&product)
}

// Update fusiona el patch sobre el producto existente.
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.OriginalPrice != nil || in.Discount != nil {
		current, ok := uc.products.GetByID(id)
		if !ok {
			return nil, domain.ErrNotFound
		}
		price, discount := current.OriginalPrice, current.Discount
		if in.OriginalPrice != nil {
			price = *in.OriginalPrice
		}
		if in.Discount != nil {
			discount = *in.Discount
		}
		if err := validateAmounts(price, discount); err != nil {
			return nil, err
		}
	}

	product, err := uc.products.Update(ctx, id, func(p *entity.Product) {
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Account != nil {
			p.Account = *in.Account
		}
		if in.OriginalPrice != nil {
			p.OriginalPrice = *in.OriginalPrice
		}
		if in.Discount != nil {
			p.Discount = *in.Discount
		}
		if in.UnitOfMeasurement != nil {
			p.UnitOfMeasure = *in.UnitOfMeasurement
		}
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(&product), nil
}

// List devuelve el snapshot completo del catálogo.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	return toProductList(uc.products.Snapshot())
}

// Search filtra por nombre, descripción o código contable.
func (uc *ProductUseCase) Search(query string) *dto.ProductListResponse {
	return toProductList(uc.products.Search(query))
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.products.Delete(ctx, id)
}

// validateAmounts exige precio original positivo y descuento en 0–100.
func validateAmounts(originalPrice, discount decimal.Decimal) error {
	if originalPrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: originalPrice debe ser mayor que 0", domain.ErrInvalidInput)
	}
	hundred := decimal.NewFromInt(100)
	if discount.IsNegative() || discount.GreaterThan(hundred) {
		return fmt.Errorf("%w: discount debe estar entre 0 y 100", domain.ErrInvalidInput)
	}
	return nil
}

func toProductList(items []entity.Product) *dto.ProductListResponse {
	out := make([]dto.ProductResponse, 0, len(items))
	for i := range items {
		out = append(out, *toProductResponse(&items[i]))
	}
	return &dto.ProductListResponse{Items: out, Total: len(out)}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Account:           p.Account,
		Price:             p.Price(),
		OriginalPrice:     p.OriginalPrice,
		Discount:          p.Discount,
		UnitOfMeasurement: p.UnitOfMeasure,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
