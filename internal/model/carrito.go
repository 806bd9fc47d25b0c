package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineaCarrito is a product snapshot plus a quantity. Price and cost are
// frozen at add time; later product edits do not retroactively change the
// line, only stock re-validation consults the live catalog.
type LineaCarrito struct {
	ProductoID uuid.UUID       `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Costo      decimal.Decimal `json:"costo"`
	Unidad     string          `json:"unidad"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// SubtotalUSD is the line total rounded to cents. Rounding happens per
// line, before summation, so the cart total matches the visible lines.
func (l LineaCarrito) SubtotalUSD() decimal.Decimal {
	return l.Precio.Mul(l.Cantidad).Round(2)
}

// SubtotalBS converts the line to bolívares at the given rate, rounded
// to cents per line like SubtotalUSD.
func (l LineaCarrito) SubtotalBS(tasa decimal.Decimal) decimal.Decimal {
	return l.Precio.Mul(l.Cantidad).Mul(tasa).Round(2)
}
