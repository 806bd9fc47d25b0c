package dto

import "github.com/shopspring/decimal"

type CrearClienteRequest struct {
	Nombre        string          `json:"nombre"   validate:"required,min=1,max=120"`
	Email         *string         `json:"email"    validate:"omitempty,email"`
	Telefono      *string         `json:"telefono"`
	LimiteCredito decimal.Decimal `json:"limite_credito" validate:"min=0"`
}

type AjustarCreditoRequest struct {
	Delta decimal.Decimal `json:"delta" validate:"required"`
}

type AbonoRequest struct {
	Monto  decimal.Decimal `json:"monto"  validate:"required"`
	Moneda string          `json:"moneda" validate:"required,oneof=USD BS"`
}

// AbonoResponse describes a payment application, including whether the
// customer overpaid and now holds credit in their favor.
type AbonoResponse struct {
	ClienteID       string          `json:"cliente_id"`
	MontoUSD        decimal.Decimal `json:"monto_usd"`
	CreditoAnterior decimal.Decimal `json:"credito_anterior"`
	CreditoNuevo    decimal.Decimal `json:"credito_nuevo"`
	Sobrepago       bool            `json:"sobrepago"`
	SaldoAFavor     decimal.Decimal `json:"saldo_a_favor"`
}

type ClienteResponse struct {
	ID             string           `json:"id"`
	Nombre         string           `json:"nombre"`
	Email          *string          `json:"email,omitempty"`
	Telefono       *string          `json:"telefono,omitempty"`
	LimiteCredito  decimal.Decimal  `json:"limite_credito"`
	Credito        decimal.Decimal  `json:"credito"`
	LimiteExcedido bool             `json:"limite_excedido"`
	Historial      []CompraResponse `json:"historial"`
}
