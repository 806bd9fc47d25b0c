package repository

import (
	"sync"
	"time"

	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/moneda"

	"github.com/shopspring/decimal"
)

// TasaRepository holds the BS-per-USD exchange rate.
type TasaRepository interface {
	Obtener() model.TasaCambio
	// Fijar rejects non-positive values.
	Fijar(valor decimal.Decimal) (model.TasaCambio, error)
	Reemplazar(t model.TasaCambio)
}

type tasaRepository struct {
	mu   sync.RWMutex
	tasa model.TasaCambio
}

// NewTasaRepository starts from the configured default rate.
func NewTasaRepository(inicial decimal.Decimal) TasaRepository {
	if !inicial.IsPositive() {
		inicial = decimal.NewFromInt(1)
	}
	return &tasaRepository{tasa: model.TasaCambio{Valor: inicial, ActualizadaEn: time.Now()}}
}

func (r *tasaRepository) Obtener() model.TasaCambio {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tasa
}

func (r *tasaRepository) Fijar(valor decimal.Decimal) (model.TasaCambio, error) {
	if !valor.IsPositive() {
		return model.TasaCambio{}, moneda.ErrTasaInvalida
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasa = model.TasaCambio{Valor: valor, ActualizadaEn: time.Now()}
	return r.tasa, nil
}

func (r *tasaRepository) Reemplazar(t model.TasaCambio) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.Valor.IsPositive() {
		r.tasa = t
	}
}
