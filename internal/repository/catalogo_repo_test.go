package repository

import (
	"testing"

	"github.com/FN2184/tiny-business-manager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoProducto(nombre string, precio, costo, stock, minimo string) model.Producto {
	return model.Producto{
		Nombre:      nombre,
		Precio:      decimal.RequireFromString(precio),
		Costo:       decimal.RequireFromString(costo),
		Stock:       decimal.RequireFromString(stock),
		StockMinimo: decimal.RequireFromString(minimo),
	}
}

func TestCrearCalculaGanancia(t *testing.T) {
	repo := NewCatalogoRepository()

	p := repo.Crear(nuevoProducto("Harina PAN", "1.50", "1.00", "10", "5"))

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "0.5", p.MargenGanancia.String())
	assert.Equal(t, "50", p.GananciaPct.String())
	assert.True(t, p.VecesVendido.IsZero())
	assert.Equal(t, model.CategoriaPorDefecto, p.Categoria)
	assert.Equal(t, model.UnidadPorDefecto, p.Unidad)
}

func TestCrearNoDeduplicaPorNombre(t *testing.T) {
	repo := NewCatalogoRepository()

	repo.Crear(nuevoProducto("Cafe", "5", "3", "10", "5"))
	repo.Crear(nuevoProducto("CAFE", "6", "4", "10", "5"))

	assert.Len(t, repo.Listar(), 2)
}

func TestDescontarStockNuncaNegativo(t *testing.T) {
	repo := NewCatalogoRepository()
	p := repo.Crear(nuevoProducto("Arroz", "2", "1", "5", "2"))

	// repeated decrements beyond the available stock floor at zero
	for i := 0; i < 4; i++ {
		got, err := repo.DescontarStock(p.ID, decimal.NewFromInt(2))
		require.NoError(t, err)
		assert.False(t, got.Stock.IsNegative())
	}

	final, err := repo.ObtenerPorID(p.ID)
	require.NoError(t, err)
	assert.True(t, final.Stock.IsZero())
	assert.Equal(t, "8", final.VecesVendido.String())
}

func TestActualizarStockRechazaNegativo(t *testing.T) {
	repo := NewCatalogoRepository()
	p := repo.Crear(nuevoProducto("Azucar", "2", "1", "5", "2"))

	_, err := repo.ActualizarStock(p.ID, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, model.ErrStockInvalido)

	got, err := repo.ActualizarStock(p.ID, decimal.RequireFromString("7.5"))
	require.NoError(t, err)
	assert.Equal(t, "7.5", got.Stock.String())
}

func TestStockBajo(t *testing.T) {
	repo := NewCatalogoRepository()
	bajo := repo.Crear(nuevoProducto("Sal", "1", "0.5", "3", "5"))
	justo := repo.Crear(nuevoProducto("Aceite", "8", "6", "5", "5"))
	repo.Crear(nuevoProducto("Pasta", "2", "1", "20", "5"))

	bajos := repo.StockBajo()
	require.Len(t, bajos, 2)
	ids := []uuid.UUID{bajos[0].ID, bajos[1].ID}
	assert.Contains(t, ids, bajo.ID)
	assert.Contains(t, ids, justo.ID)

	// raising every qualifying product above its minimum empties the set
	_, err := repo.ActualizarStock(bajo.ID, decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = repo.ActualizarStock(justo.ID, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Empty(t, repo.StockBajo())
}

func TestMasVendidos(t *testing.T) {
	repo := NewCatalogoRepository()
	a := repo.Crear(nuevoProducto("A", "1", "0.5", "100", "5"))
	b := repo.Crear(nuevoProducto("B", "1", "0.5", "100", "5"))
	c := repo.Crear(nuevoProducto("C", "1", "0.5", "100", "5"))

	_, _ = repo.DescontarStock(b.ID, decimal.NewFromInt(9))
	_, _ = repo.DescontarStock(c.ID, decimal.NewFromInt(4))
	_, _ = repo.DescontarStock(a.ID, decimal.NewFromInt(1))

	top := repo.MasVendidos(2)
	require.Len(t, top, 2)
	assert.Equal(t, b.ID, top[0].ID)
	assert.Equal(t, c.ID, top[1].ID)
}

func TestReemplazarRestauraAggregate(t *testing.T) {
	repo := NewCatalogoRepository()
	repo.Crear(nuevoProducto("Viejo", "1", "0.5", "1", "5"))

	id := uuid.New()
	repo.Reemplazar([]model.Producto{{ID: id, Nombre: "Restaurado", Stock: decimal.NewFromInt(3)}})

	got, err := repo.ObtenerPorID(id)
	require.NoError(t, err)
	assert.Equal(t, "Restaurado", got.Nombre)
	assert.Len(t, repo.Listar(), 1)
}
