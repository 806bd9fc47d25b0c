package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/FN2184/tiny-business-manager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogoRepository owns the in-memory product list. It is the single
// source of truth for the running process; snapshots to durable storage
// are written after the fact and never block or roll back a mutation.
type CatalogoRepository interface {
	Crear(p model.Producto) model.Producto
	ObtenerPorID(id uuid.UUID) (model.Producto, error)
	// BuscarPorNombre matches case-insensitively (import dedup path).
	BuscarPorNombre(nombre string) (model.Producto, bool)
	Listar() []model.Producto
	ActualizarStock(id uuid.UUID, nuevo decimal.Decimal) (model.Producto, error)
	// DescontarStock floors at zero and accumulates the sales counter.
	DescontarStock(id uuid.UUID, cantidad decimal.Decimal) (model.Producto, error)
	StockBajo() []model.Producto
	MasVendidos(limite int) []model.Producto
	// Reemplazar swaps the whole aggregate (startup rehydration).
	Reemplazar(productos []model.Producto)
	Snapshot() []model.Producto
}

type catalogoRepository struct {
	mu        sync.RWMutex
	productos []*model.Producto
	porID     map[uuid.UUID]*model.Producto
}

func NewCatalogoRepository() CatalogoRepository {
	return &catalogoRepository{porID: make(map[uuid.UUID]*model.Producto)}
}

func (r *catalogoRepository) Crear(p model.Producto) model.Producto {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.VecesVendido = decimal.Zero
	if p.Categoria == "" {
		p.Categoria = model.CategoriaPorDefecto
	}
	if p.Unidad == "" {
		p.Unidad = model.UnidadPorDefecto
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.RecalcularGanancia()

	cp := p
	r.productos = append(r.productos, &cp)
	r.porID[cp.ID] = &cp
	return p
}

func (r *catalogoRepository) ObtenerPorID(id uuid.UUID) (model.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.porID[id]
	if !ok {
		return model.Producto{}, model.ErrProductoNoEncontrado
	}
	return *p, nil
}

func (r *catalogoRepository) BuscarPorNombre(nombre string) (model.Producto, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.productos {
		if strings.EqualFold(p.Nombre, nombre) {
			return *p, true
		}
	}
	return model.Producto{}, false
}

func (r *catalogoRepository) Listar() []model.Producto {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clonar()
}

func (r *catalogoRepository) ActualizarStock(id uuid.UUID, nuevo decimal.Decimal) (model.Producto, error) {
	if nuevo.IsNegative() {
		return model.Producto{}, model.ErrStockInvalido
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.porID[id]
	if !ok {
		return model.Producto{}, model.ErrProductoNoEncontrado
	}
	p.Stock = nuevo.Round(4)
	p.UpdatedAt = time.Now()
	return *p, nil
}

func (r *catalogoRepository) DescontarStock(id uuid.UUID, cantidad decimal.Decimal) (model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.porID[id]
	if !ok {
		return model.Producto{}, model.ErrProductoNoEncontrado
	}
	restante := p.Stock.Sub(cantidad)
	if restante.IsNegative() {
		restante = decimal.Zero
	}
	p.Stock = restante
	p.VecesVendido = p.VecesVendido.Add(cantidad)
	p.UpdatedAt = time.Now()
	return *p, nil
}

func (r *catalogoRepository) StockBajo() []model.Producto {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bajos []model.Producto
	for _, p := range r.productos {
		if p.BajoStock() {
			bajos = append(bajos, *p)
		}
	}
	return bajos
}

func (r *catalogoRepository) MasVendidos(limite int) []model.Producto {
	r.mu.RLock()
	vendidos := r.clonar()
	r.mu.RUnlock()

	sort.SliceStable(vendidos, func(i, j int) bool {
		return vendidos[i].VecesVendido.GreaterThan(vendidos[j].VecesVendido)
	})
	if limite > 0 && len(vendidos) > limite {
		vendidos = vendidos[:limite]
	}
	return vendidos
}

func (r *catalogoRepository) Reemplazar(productos []model.Producto) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.productos = make([]*model.Producto, 0, len(productos))
	r.porID = make(map[uuid.UUID]*model.Producto, len(productos))
	for i := range productos {
		cp := productos[i]
		r.productos = append(r.productos, &cp)
		r.porID[cp.ID] = &cp
	}
}

func (r *catalogoRepository) Snapshot() []model.Producto {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clonar()
}

// clonar copies every product; callers must hold at least a read lock.
func (r *catalogoRepository) clonar() []model.Producto {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out
}
