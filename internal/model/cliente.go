package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente is a ledger entry for a regular customer.
// Credito is signed: positive means the customer owes the shop, negative
// means an overpayment held in the customer's favor.
type Cliente struct {
	ID       uuid.UUID `json:"id"`
	Nombre   string    `json:"nombre"`
	Email    *string   `json:"email,omitempty"`
	Telefono *string   `json:"telefono,omitempty"`
	// LimiteCredito is advisory. Checkout may push Credito above it and
	// only signals a warning.
	LimiteCredito decimal.Decimal `json:"limite_credito"`
	Credito       decimal.Decimal `json:"credito"`
	// Historial holds this customer's purchases, most recent first.
	Historial []Compra  `json:"historial"`
	CreatedAt time.Time `json:"created_at"`
}

// LimiteExcedido reports whether the running credit is above the limit.
func (c *Cliente) LimiteExcedido() bool {
	return c.Credito.GreaterThan(c.LimiteCredito)
}
