package dto

import "github.com/shopspring/decimal"

// CheckoutRequest closes the current cart. MontoRecibido applies only to
// cash sales; for punto/biopago the sale is always settled in full.
type CheckoutRequest struct {
	Metodo        string           `json:"metodo"         validate:"required,oneof=efectivo punto biopago credito"`
	ClienteID     *string          `json:"cliente_id"     validate:"omitempty,uuid"`
	MontoRecibido *decimal.Decimal `json:"monto_recibido"`
}

type LineaCompraResponse struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type CompraResponse struct {
	ID          string                `json:"id"`
	Fecha       string                `json:"fecha"`
	Lineas      []LineaCompraResponse `json:"lineas"`
	TotalUSD    decimal.Decimal       `json:"total_usd"`
	TotalBS     decimal.Decimal       `json:"total_bs"`
	Tasa        decimal.Decimal       `json:"tasa"`
	Metodo      string                `json:"metodo"`
	Estado      string                `json:"estado"`
	MontoPagado *decimal.Decimal      `json:"monto_pagado,omitempty"`
	VueltoUSD   decimal.Decimal       `json:"vuelto_usd"`
	VueltoBS    decimal.Decimal       `json:"vuelto_bs"`
	TipoCliente string                `json:"tipo_cliente"`
	ClienteID   *string               `json:"cliente_id,omitempty"`
	// AdvertenciaLimite is informational: the sale committed even though
	// the customer's credit now exceeds their limit.
	AdvertenciaLimite bool `json:"advertencia_limite"`
}
