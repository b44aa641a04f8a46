package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para productos de heladería.
const (
	UnitLiter     = "liter"
	UnitGallon    = "gallon"
	UnitScoop     = "scoop"
	UnitContainer = "container"
	UnitPint      = "pint"
	UnitQuart     = "quart"
)

// Product representa un producto de helado del catálogo.
// El precio de venta es derivado: OriginalPrice × (1 − Discount/100).
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Account       string          `json:"account"` // código contable, patrón XXX-###
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Discount      decimal.Decimal `json:"discount"` // porcentaje 0–100
	UnitOfMeasure string          `json:"unitOfMeasurement"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Price calcula el precio de venta aplicando el descuento sobre el precio original.
func (p *Product) Price() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	factor := hundred.Sub(p.Discount).Div(hundred)
	return p.OriginalPrice.Mul(factor).Round(2)
}

// EntityID implementa store.Entity.
func (p *Product) EntityID() string { return p.ID }

// SetEntityID implementa store.Entity.
func (p *Product) SetEntityID(id string) { p.ID = id }

// Stamp actualiza los timestamps de auditoría.
func (p *Product) Stamp(now time.Time, created bool) {
	if created {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
