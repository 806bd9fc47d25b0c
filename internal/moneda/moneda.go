// Package moneda holds the dual-currency and quantity arithmetic shared by
// the catalog, the cart and checkout. All math runs on shopspring/decimal;
// float64 never touches money.
package moneda

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrTasaInvalida     = errors.New("la tasa de cambio debe ser mayor que cero")
	ErrCantidadInvalida = errors.New("cantidad inválida")
)

// AXBolivares converts a USD amount to bolívares at the given rate.
func AXBolivares(usd, tasa decimal.Decimal) (decimal.Decimal, error) {
	if !tasa.IsPositive() {
		return decimal.Zero, ErrTasaInvalida
	}
	return usd.Mul(tasa), nil
}

// ADolares converts a BS amount to USD at the given rate.
func ADolares(bs, tasa decimal.Decimal) (decimal.Decimal, error) {
	if !tasa.IsPositive() {
		return decimal.Zero, ErrTasaInvalida
	}
	return bs.Div(tasa), nil
}

// RedondearMoneda rounds a monetary amount to cents. Subtotals round per
// line with this function before summing, so accumulated totals always
// match the visible per-line amounts.
func RedondearMoneda(monto decimal.Decimal) decimal.Decimal {
	return monto.Round(2)
}

// RedondearCantidad rounds a quantity to the 4 decimals supported for
// products sold by weight or fraction.
func RedondearCantidad(cantidad decimal.Decimal) decimal.Decimal {
	return cantidad.Round(4)
}

// ParseStock parses a stock value. Unlike ParseCantidad, zero is valid:
// a product may legitimately be out of stock. Negative values are not.
func ParseStock(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrCantidadInvalida
	}
	return d.Round(4), nil
}

// ParseCantidad parses a user-entered quantity. Both "." and "," are
// accepted as decimal separator. The result must be positive and is
// rounded to 4 decimals; anything else yields ErrCantidadInvalida.
func ParseCantidad(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero, ErrCantidadInvalida
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, ErrCantidadInvalida
	}
	return d.Round(4), nil
}
