package infra

// snapshot.go — contract for the durable key-value layer.
// Every mutation to an aggregate re-serializes the whole aggregate and
// writes it under a fixed key; there are no incremental writes. The
// in-memory aggregates remain the source of truth: a failed write is
// logged and never rolls anything back.

import (
	"context"
	"errors"
)

// Well-known snapshot keys.
const (
	ClaveProductos       = "productos"
	ClaveClientes        = "clientes"
	ClaveCategorias      = "categorias"
	ClaveTasa            = "tasa_cambio"
	ClaveTasaActualizada = "tasa_actualizada_en"
)

// ErrClaveNoEncontrada is returned by Leer when a key was never written.
// Rehydration treats it as "use the default state", not as a failure.
var ErrClaveNoEncontrada = errors.New("clave de snapshot no encontrada")

// SnapshotStore is the pluggable durable backend: local JSON files,
// an embedded bbolt database, or a remote Redis.
type SnapshotStore interface {
	Guardar(ctx context.Context, clave string, valor []byte) error
	Leer(ctx context.Context, clave string) ([]byte, error)
	Cerrar() error
	// Nombre identifies the backend in logs and the health endpoint.
	Nombre() string
}
