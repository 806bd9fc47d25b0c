package dto

import "github.com/shopspring/decimal"

type AgregarItemRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   string `json:"cantidad"    validate:"required"`
}

type FijarCantidadRequest struct {
	Cantidad string `json:"cantidad" validate:"required"`
}

type LineaCarritoResponse struct {
	ProductoID  string          `json:"producto_id"`
	Nombre      string          `json:"nombre"`
	Precio      decimal.Decimal `json:"precio"`
	Unidad      string          `json:"unidad"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	SubtotalUSD decimal.Decimal `json:"subtotal_usd"`
	SubtotalBS  decimal.Decimal `json:"subtotal_bs"`
}

type CarritoResponse struct {
	Lineas      []LineaCarritoResponse `json:"lineas"`
	SubtotalUSD decimal.Decimal        `json:"subtotal_usd"`
	SubtotalBS  decimal.Decimal        `json:"subtotal_bs"`
	Tasa        decimal.Decimal        `json:"tasa"`
}

type VueltoRequest struct {
	Monto  decimal.Decimal `json:"monto"  validate:"required"`
	Moneda string          `json:"moneda" validate:"required,oneof=USD BS"`
}

type VueltoResponse struct {
	VueltoUSD decimal.Decimal `json:"vuelto_usd"`
	VueltoBS  decimal.Decimal `json:"vuelto_bs"`
}
