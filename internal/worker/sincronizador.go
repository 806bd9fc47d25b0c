package worker

// sincronizador.go — mirrors the in-memory aggregates to the snapshot
// store and rehydrates them at startup. Each key always receives the
// fully re-serialized aggregate; there are no delta writes. Malformed
// stored data never crashes startup: the affected aggregate simply keeps
// its default state.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Sincronizador connects the aggregates to a SnapshotStore.
type Sincronizador struct {
	store      infra.SnapshotStore
	catalogo   repository.CatalogoRepository
	clientes   repository.ClienteRepository
	categorias repository.CategoriaRepository
	tasa       repository.TasaRepository
}

func NewSincronizador(
	store infra.SnapshotStore,
	catalogo repository.CatalogoRepository,
	clientes repository.ClienteRepository,
	categorias repository.CategoriaRepository,
	tasa repository.TasaRepository,
) *Sincronizador {
	return &Sincronizador{
		store:      store,
		catalogo:   catalogo,
		clientes:   clientes,
		categorias: categorias,
		tasa:       tasa,
	}
}

// Sincronizar re-serializes the aggregate behind clave and writes it.
// ClaveTasa also refreshes the last-update timestamp key.
func (s *Sincronizador) Sincronizar(ctx context.Context, clave string) error {
	var payload interface{}
	switch clave {
	case infra.ClaveProductos:
		payload = s.catalogo.Snapshot()
	case infra.ClaveClientes:
		payload = s.clientes.Snapshot()
	case infra.ClaveCategorias:
		payload = s.categorias.Snapshot()
	case infra.ClaveTasa:
		t := s.tasa.Obtener()
		if err := s.escribir(ctx, infra.ClaveTasaActualizada, []byte(`"`+t.ActualizadaEn.UTC().Format(time.RFC3339)+`"`)); err != nil {
			return err
		}
		payload = t.Valor
	default:
		return fmt.Errorf("sincronizador: clave desconocida %q", clave)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sincronizador: serializar %s: %w", clave, err)
	}
	return s.escribir(ctx, clave, data)
}

func (s *Sincronizador) escribir(ctx context.Context, clave string, data []byte) error {
	if err := s.store.Guardar(ctx, clave, data); err != nil {
		return fmt.Errorf("sincronizador: guardar %s: %w", clave, err)
	}
	return nil
}

// SincronizarTodo re-mirrors every aggregate. Used by the periodic cron
// to heal snapshots whose fire-and-forget write failed.
func (s *Sincronizador) SincronizarTodo(ctx context.Context) {
	claves := []string{infra.ClaveProductos, infra.ClaveClientes, infra.ClaveCategorias, infra.ClaveTasa}
	for _, clave := range claves {
		if err := s.Sincronizar(ctx, clave); err != nil {
			log.Error().Err(err).Str("clave", clave).Msg("sincronizador: escritura fallida")
		}
	}
}

// Rehidratar loads every aggregate from the store at process start.
// A missing key or malformed payload leaves that aggregate at its
// default and logs a warning; it never fails the process.
func (s *Sincronizador) Rehidratar(ctx context.Context) {
	if data, ok := s.leer(ctx, infra.ClaveProductos); ok {
		var productos []model.Producto
		if err := json.Unmarshal(data, &productos); err != nil {
			log.Warn().Err(err).Str("clave", infra.ClaveProductos).Msg("snapshot corrupto, catálogo en estado inicial")
		} else {
			s.catalogo.Reemplazar(productos)
			log.Info().Int("productos", len(productos)).Msg("catálogo rehidratado")
		}
	}

	if data, ok := s.leer(ctx, infra.ClaveClientes); ok {
		var clientes []model.Cliente
		if err := json.Unmarshal(data, &clientes); err != nil {
			log.Warn().Err(err).Str("clave", infra.ClaveClientes).Msg("snapshot corrupto, cartera de clientes en estado inicial")
		} else {
			s.clientes.Reemplazar(clientes)
			log.Info().Int("clientes", len(clientes)).Msg("cartera de clientes rehidratada")
		}
	}

	if data, ok := s.leer(ctx, infra.ClaveCategorias); ok {
		var categorias []string
		if err := json.Unmarshal(data, &categorias); err != nil {
			log.Warn().Err(err).Str("clave", infra.ClaveCategorias).Msg("snapshot corrupto, categorías en estado inicial")
		} else {
			s.categorias.Reemplazar(categorias)
		}
	}

	if data, ok := s.leer(ctx, infra.ClaveTasa); ok {
		var valor decimal.Decimal
		if err := json.Unmarshal(data, &valor); err != nil || !valor.IsPositive() {
			log.Warn().Str("clave", infra.ClaveTasa).Msg("snapshot corrupto, tasa por defecto en uso")
			return
		}
		actualizada := time.Now()
		if raw, ok := s.leer(ctx, infra.ClaveTasaActualizada); ok {
			var ts string
			if err := json.Unmarshal(raw, &ts); err == nil {
				if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
					actualizada = parsed
				}
			}
		}
		s.tasa.Reemplazar(model.TasaCambio{Valor: valor, ActualizadaEn: actualizada})
		log.Info().Str("tasa", valor.String()).Msg("tasa de cambio rehidratada")
	}
}

func (s *Sincronizador) leer(ctx context.Context, clave string) ([]byte, bool) {
	data, err := s.store.Leer(ctx, clave)
	if errors.Is(err, infra.ErrClaveNoEncontrada) {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("clave", clave).Msg("no se pudo leer el snapshot")
		return nil, false
	}
	return data, true
}
