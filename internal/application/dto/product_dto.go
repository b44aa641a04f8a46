package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Description       string          `json:"description" validate:"max=1000"`
	Account           string          `json:"account" validate:"required,account_code"`
	OriginalPrice     decimal.Decimal `json:"originalPrice"`
	Discount          decimal.Decimal `json:"discount"`
	UnitOfMeasurement string          `json:"unitOfMeasurement" validate:"required,oneof=liter gallon scoop container pint quart"`
}

// UpdateProductRequest entrada parcial para actualizar un producto.
// Campos nil se dejan como están.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description" validate:"omitempty,max=1000"`
	Account           *string          `json:"account" validate:"omitempty,account_code"`
	OriginalPrice     *decimal.Decimal `json:"originalPrice"`
	Discount          *decimal.Decimal `json:"discount"`
	UnitOfMeasurement *string          `json:"unitOfMeasurement" validate:"omitempty,oneof=liter gallon scoop container pint quart"`
}

// ProductResponse salida de un producto con el precio derivado.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Account           string          `json:"account"`
	Price             decimal.Decimal `json:"price"` // derivado: originalPrice × (1 − discount/100)
	OriginalPrice     decimal.Decimal `json:"originalPrice"`
	Discount          decimal.Decimal `json:"discount"`
	UnitOfMeasurement string          `json:"unitOfMeasurement"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ProductListResponse listado completo de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
