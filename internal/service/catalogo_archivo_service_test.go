package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoArchivoService(t *testing.T) (CatalogoArchivoService, repository.CatalogoRepository, repository.CategoriaRepository) {
	t.Helper()
	catalogo := repository.NewCatalogoRepository()
	categorias := repository.NewCategoriaRepository()
	return NewCatalogoArchivoService(catalogo, categorias, nil), catalogo, categorias
}

func TestImportarEsquemaGenerico(t *testing.T) {
	svc, catalogo, _ := nuevoArchivoService(t)

	contenido := []byte(`[
		{"name": "Harina PAN", "price": 1.5, "cost": 1.0, "stock": 24},
		{"name": "Cafe Madrid", "price": 8.25, "cost": 6.0, "stock": 6}
	]`)

	resp, err := svc.Importar(context.Background(), contenido)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Importados)
	assert.Equal(t, 0, resp.Descartados)

	p, ok := catalogo.BuscarPorNombre("harina pan")
	require.True(t, ok)
	assert.Equal(t, "1.5", p.Precio.String())
	assert.Equal(t, model.CategoriaPorDefecto, p.Categoria)
	assert.Equal(t, "5", p.StockMinimo.String(), "mínimo por defecto")
}

func TestImportarEsquemaPlanilla(t *testing.T) {
	svc, catalogo, categorias := nuevoArchivoService(t)

	contenido := []byte(`{
		"Nombre": "Queso Blanco",
		"Precio": "4,80",
		"Costo": 3.2,
		"Cantidad": "12.5",
		"Cantidad Mínima": 3,
		"Categoría": "charcutería",
		"Unidad": "KG",
		"Clave": "QB-01"
	}`)

	resp, err := svc.Importar(context.Background(), contenido)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Importados)

	p, ok := catalogo.BuscarPorNombre("Queso Blanco")
	require.True(t, ok)
	assert.Equal(t, "4.8", p.Precio.String(), "coma decimal aceptada")
	assert.Equal(t, "12.5", p.Stock.String())
	assert.Equal(t, "CHARCUTERÍA", p.Categoria, "categoría normalizada y registrada")
	assert.Equal(t, "KG", p.Unidad)
	assert.Equal(t, "QB-01", p.Clave)
	assert.Contains(t, categorias.Listar(), "CHARCUTERÍA")
}

func TestImportarDeduplicaPorNombre(t *testing.T) {
	svc, catalogo, _ := nuevoArchivoService(t)
	existente := catalogo.Crear(model.Producto{Nombre: "Azucar", Precio: decimal.NewFromInt(2), Stock: decimal.NewFromInt(9)})

	contenido := []byte(`[
		{"name": "AZUCAR", "price": 99},
		{"name": "Sal", "price": 1},
		{"name": "sal", "price": 2},
		{"name": "Vinagre", "price": 3}
	]`)

	resp, err := svc.Importar(context.Background(), contenido)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Importados, "solo Sal y Vinagre")
	assert.Equal(t, 2, resp.Descartados)

	// the existing entry is untouched
	got, err := catalogo.ObtenerPorID(existente.ID)
	require.NoError(t, err)
	assert.Equal(t, "2", got.Precio.String())
	assert.Equal(t, "9", got.Stock.String())
	assert.Len(t, catalogo.Listar(), 3)
}

func TestImportarDescartaRegistrosInservibles(t *testing.T) {
	svc, _, _ := nuevoArchivoService(t)

	contenido := []byte(`[
		{"name": "", "price": 5},
		{"name": "Sin precio"},
		{"name": "Valido", "price": "2,50"}
	]`)

	resp, err := svc.Importar(context.Background(), contenido)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Importados)
	assert.Equal(t, 2, resp.Descartados)
}

func TestImportarArchivoVacio(t *testing.T) {
	svc, catalogo, _ := nuevoArchivoService(t)

	for _, contenido := range [][]byte{nil, []byte(""), []byte("{no es json"), []byte("[]")} {
		_, err := svc.Importar(context.Background(), contenido)
		assert.ErrorIs(t, err, model.ErrArchivoVacio, "contenido %q", contenido)
	}
	assert.Empty(t, catalogo.Listar(), "un archivo inválido no toca el catálogo")
}

func TestImportarSinRegistrosValidos(t *testing.T) {
	svc, catalogo, _ := nuevoArchivoService(t)

	_, err := svc.Importar(context.Background(), []byte(`[{"name": ""}, {"price": 1}]`))
	assert.ErrorIs(t, err, model.ErrSinRegistrosValidos)
	assert.Empty(t, catalogo.Listar())
}

func TestExportarEsquemaPlanilla(t *testing.T) {
	svc, catalogo, _ := nuevoArchivoService(t)
	catalogo.Crear(model.Producto{
		Nombre:      "Mantequilla",
		Clave:       "MA-07",
		Precio:      decimal.RequireFromString("3.10"),
		Costo:       decimal.RequireFromString("2.00"),
		Stock:       decimal.NewFromInt(4),
		StockMinimo: decimal.NewFromInt(2),
		Categoria:   "LACTEOS",
	})

	nombre, data, err := svc.Exportar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("catalogo_%s.json", time.Now().Format("2006-01-02")), nombre)

	var filas []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &filas))
	require.Len(t, filas, 1)
	fila := filas[0]
	assert.Equal(t, "Mantequilla", fila["Nombre"])
	assert.Equal(t, "MA-07", fila["Clave"])
	assert.Equal(t, "LACTEOS", fila["Categoría"])
	assert.Contains(t, fila, "Costo Promedio")
	assert.Contains(t, fila, "Cantidad Mínima")

	// the export round-trips through the import path
	svc2, catalogo2, _ := nuevoArchivoService(t)
	resp, err := svc2.Importar(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Importados)
	p, ok := catalogo2.BuscarPorNombre("Mantequilla")
	require.True(t, ok)
	assert.Equal(t, "4", p.Stock.String())
}
