package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MetodoPago is the closed set of payment methods accepted at checkout.
type MetodoPago string

const (
	MetodoEfectivo MetodoPago = "efectivo"
	MetodoPunto    MetodoPago = "punto"
	MetodoBiopago  MetodoPago = "biopago"
	MetodoCredito  MetodoPago = "credito"
)

// Valido reports whether m is one of the accepted methods.
func (m MetodoPago) Valido() bool {
	switch m {
	case MetodoEfectivo, MetodoPunto, MetodoBiopago, MetodoCredito:
		return true
	}
	return false
}

// EstadoPago is derived at checkout from the method and the amount tendered.
type EstadoPago string

const (
	EstadoPagado  EstadoPago = "pagado"
	EstadoParcial EstadoPago = "parcial"
	EstadoCredito EstadoPago = "credito"
)

// TipoCliente classifies the buyer at checkout time. Only regular
// customers are linked to a ledger entry.
type TipoCliente string

const (
	ClienteRegular   TipoCliente = "regular"
	ClienteOcasional TipoCliente = "ocasional"
)

// LineaCompra is a frozen copy of a cart line at checkout time.
type LineaCompra struct {
	ProductoID uuid.UUID       `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// Compra is an immutable purchase record produced by checkout.
// Totals are computed with the exchange rate in effect at that moment.
type Compra struct {
	ID          uuid.UUID        `json:"id"`
	Fecha       time.Time        `json:"fecha"`
	Lineas      []LineaCompra    `json:"lineas"`
	TotalUSD    decimal.Decimal  `json:"total_usd"`
	TotalBS     decimal.Decimal  `json:"total_bs"`
	Tasa        decimal.Decimal  `json:"tasa"`
	Metodo      MetodoPago       `json:"metodo"`
	Estado      EstadoPago       `json:"estado"`
	MontoPagado *decimal.Decimal `json:"monto_pagado,omitempty"`
	TipoCliente TipoCliente      `json:"tipo_cliente"`
	ClienteID   *uuid.UUID       `json:"cliente_id,omitempty"`
}
