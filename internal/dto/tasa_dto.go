package dto

import "github.com/shopspring/decimal"

type FijarTasaRequest struct {
	Valor decimal.Decimal `json:"valor" validate:"required"`
}

type TasaResponse struct {
	Valor         decimal.Decimal `json:"valor"`
	ActualizadaEn string          `json:"actualizada_en"`
}
