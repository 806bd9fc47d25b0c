package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for precondition failures. All are detected before any
// aggregate mutation, so a caller can correct the input and retry.
var (
	ErrCarritoVacio        = errors.New("el carrito está vacío")
	ErrClienteRequerido    = errors.New("se requiere un cliente para ventas a crédito")
	ErrClienteNoEncontrado = errors.New("cliente no encontrado")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrMontoInvalido       = errors.New("el monto recibido debe ser mayor que cero")
	ErrStockInvalido       = errors.New("el stock no puede ser negativo")
	ErrMetodoPagoInvalido  = errors.New("método de pago inválido")
	ErrNombreRequerido     = errors.New("el nombre es obligatorio")
	ErrCategoriaVacia      = errors.New("la categoría no puede estar vacía")
	ErrArchivoVacio        = errors.New("el archivo de catálogo no contiene registros")
	ErrSinRegistrosValidos = errors.New("el archivo no contiene registros válidos")
)

// StockInsuficienteError reports the available quantity so the caller can
// correct and resubmit.
type StockInsuficienteError struct {
	Producto   string
	Disponible decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: solo %s disponible", e.Producto, e.Disponible.String())
}

// PagoInsuficienteError is returned when cash tendered does not cover the
// total and there is no customer to absorb the shortfall.
type PagoInsuficienteError struct {
	Total    decimal.Decimal
	Recibido decimal.Decimal
}

func (e *PagoInsuficienteError) Error() string {
	return fmt.Sprintf("pago insuficiente: total %s, recibido %s", e.Total.StringFixed(2), e.Recibido.StringFixed(2))
}

// Faltante is the uncovered remainder.
func (e *PagoInsuficienteError) Faltante() decimal.Decimal {
	return e.Total.Sub(e.Recibido)
}
