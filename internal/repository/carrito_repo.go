package repository

import (
	"sync"

	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/moneda"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarritoRepository owns the in-progress sale. Lines hold product
// snapshots; the live catalog is consulted only for the stock ceiling,
// which callers pass in via the producto argument.
type CarritoRepository interface {
	// Agregar merges into an existing line for the same product instead
	// of duplicating it. The merged quantity may not exceed stock.
	Agregar(producto model.Producto, cantidad decimal.Decimal) error
	Quitar(productoID uuid.UUID)
	// FijarCantidad replaces the line quantity, re-validating against
	// the live stock. A quantity of zero or less removes the line.
	FijarCantidad(producto model.Producto, cantidad decimal.Decimal) error
	Lineas() []model.LineaCarrito
	Vacio() bool
	SubtotalUSD() decimal.Decimal
	SubtotalBS(tasa decimal.Decimal) decimal.Decimal
	Vaciar()
}

type carritoRepository struct {
	mu     sync.RWMutex
	lineas []model.LineaCarrito
}

func NewCarritoRepository() CarritoRepository {
	return &carritoRepository{}
}

func (r *carritoRepository) Agregar(producto model.Producto, cantidad decimal.Decimal) error {
	if !cantidad.IsPositive() {
		return moneda.ErrCantidadInvalida
	}
	cantidad = moneda.RedondearCantidad(cantidad)

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indice(producto.ID); i >= 0 {
		fusionada := moneda.RedondearCantidad(r.lineas[i].Cantidad.Add(cantidad))
		if fusionada.GreaterThan(producto.Stock) {
			return &model.StockInsuficienteError{Producto: producto.Nombre, Disponible: producto.Stock}
		}
		r.lineas[i].Cantidad = fusionada
		return nil
	}

	if cantidad.GreaterThan(producto.Stock) {
		return &model.StockInsuficienteError{Producto: producto.Nombre, Disponible: producto.Stock}
	}
	r.lineas = append(r.lineas, model.LineaCarrito{
		ProductoID: producto.ID,
		Nombre:     producto.Nombre,
		Precio:     producto.Precio,
		Costo:      producto.Costo,
		Unidad:     producto.Unidad,
		Cantidad:   cantidad,
	})
	return nil
}

func (r *carritoRepository) Quitar(productoID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indice(productoID); i >= 0 {
		r.lineas = append(r.lineas[:i], r.lineas[i+1:]...)
	}
}

func (r *carritoRepository) FijarCantidad(producto model.Producto, cantidad decimal.Decimal) error {
	if !cantidad.IsPositive() {
		r.Quitar(producto.ID)
		return nil
	}
	cantidad = moneda.RedondearCantidad(cantidad)
	if cantidad.GreaterThan(producto.Stock) {
		return &model.StockInsuficienteError{Producto: producto.Nombre, Disponible: producto.Stock}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indice(producto.ID); i >= 0 {
		r.lineas[i].Cantidad = cantidad
		return nil
	}
	r.lineas = append(r.lineas, model.LineaCarrito{
		ProductoID: producto.ID,
		Nombre:     producto.Nombre,
		Precio:     producto.Precio,
		Costo:      producto.Costo,
		Unidad:     producto.Unidad,
		Cantidad:   cantidad,
	})
	return nil
}

func (r *carritoRepository) Lineas() []model.LineaCarrito {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.LineaCarrito, len(r.lineas))
	copy(out, r.lineas)
	return out
}

func (r *carritoRepository) Vacio() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lineas) == 0
}

func (r *carritoRepository) SubtotalUSD() decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, l := range r.lineas {
		total = total.Add(l.SubtotalUSD())
	}
	return total
}

func (r *carritoRepository) SubtotalBS(tasa decimal.Decimal) decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, l := range r.lineas {
		total = total.Add(l.SubtotalBS(tasa))
	}
	return total
}

func (r *carritoRepository) Vaciar() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lineas = nil
}

// indice locates a line by product id; callers must hold the lock.
func (r *carritoRepository) indice(productoID uuid.UUID) int {
	for i, l := range r.lineas {
		if l.ProductoID == productoID {
			return i
		}
	}
	return -1
}
