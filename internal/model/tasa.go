package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TasaCambio is the process-wide BS-per-USD exchange rate.
type TasaCambio struct {
	Valor         decimal.Decimal `json:"valor"`
	ActualizadaEn time.Time       `json:"actualizada_en"`
}
