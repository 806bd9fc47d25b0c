package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoriaPorDefecto is assigned to products created or imported without
// an explicit category.
const CategoriaPorDefecto = "SIN CATEGORÍA"

// UnidadPorDefecto is the unit label for products that do not declare one.
const UnidadPorDefecto = "UNIDAD"

// Producto is a catalog entry. Prices are in USD; the BS value is always
// derived at display/checkout time from the current exchange rate.
// Stock may be fractional (products sold by weight), up to 4 decimals.
type Producto struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Categoria string    `json:"categoria"`
	// Clave is the external catalog key carried through import/export.
	Clave  string          `json:"clave,omitempty"`
	Costo  decimal.Decimal `json:"costo"`
	Precio decimal.Decimal `json:"precio"`
	// GananciaPct and MargenGanancia are derived from Precio/Costo and
	// recomputed on every price or cost change, never set directly.
	GananciaPct    decimal.Decimal `json:"ganancia_pct"`
	MargenGanancia decimal.Decimal `json:"margen_ganancia"`
	Stock          decimal.Decimal `json:"stock"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	Unidad         string          `json:"unidad"`
	// VecesVendido accumulates units sold across checkouts. Fractional
	// quantities count fractionally.
	VecesVendido       decimal.Decimal `json:"veces_vendido"`
	InfoAdicional      string          `json:"info_adicional,omitempty"`
	PreciosAdicionales string          `json:"precios_adicionales,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

var cien = decimal.NewFromInt(100)

// RecalcularGanancia recomputes the derived profit fields.
// With Costo = 0 the percentage is defined as 0.
func (p *Producto) RecalcularGanancia() {
	p.MargenGanancia = p.Precio.Sub(p.Costo)
	if p.Costo.IsPositive() {
		p.GananciaPct = p.MargenGanancia.Div(p.Costo).Mul(cien).Round(2)
	} else {
		p.GananciaPct = decimal.Zero
	}
}

// BajoStock reports whether the product is at or below its minimum.
func (p *Producto) BajoStock() bool {
	return p.Stock.LessThanOrEqual(p.StockMinimo)
}
