package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoSincronizador(t *testing.T, store infra.SnapshotStore) (*Sincronizador, repository.CatalogoRepository, repository.TasaRepository) {
	t.Helper()
	catalogo := repository.NewCatalogoRepository()
	clientes := repository.NewClienteRepository()
	categorias := repository.NewCategoriaRepository()
	tasa := repository.NewTasaRepository(decimal.NewFromInt(36))
	return NewSincronizador(store, catalogo, clientes, categorias, tasa), catalogo, tasa
}

func TestSincronizarYRehidratar(t *testing.T) {
	dir := t.TempDir()
	store, err := infra.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	sinc, catalogo, tasa := nuevoSincronizador(t, store)
	p := catalogo.Crear(model.Producto{Nombre: "Cafe", Precio: decimal.NewFromInt(5), Stock: decimal.NewFromInt(10)})
	_, err = tasa.Fijar(decimal.RequireFromString("40.5"))
	require.NoError(t, err)

	sinc.SincronizarTodo(ctx)

	// a fresh process rehydrates from the same store
	store2, err := infra.NewFileStore(dir)
	require.NoError(t, err)
	sinc2, catalogo2, tasa2 := nuevoSincronizador(t, store2)
	sinc2.Rehidratar(ctx)

	got, err := catalogo2.ObtenerPorID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cafe", got.Nombre)
	assert.Equal(t, "40.5", tasa2.Obtener().Valor.String())
}

func TestRehidratarSnapshotCorrupto(t *testing.T) {
	store, err := infra.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Guardar(ctx, infra.ClaveProductos, []byte("{not json")))
	require.NoError(t, store.Guardar(ctx, infra.ClaveTasa, []byte(`"tampoco"`)))

	sinc, catalogo, tasa := nuevoSincronizador(t, store)
	sinc.Rehidratar(ctx)

	// corrupt payloads leave each aggregate at its default
	assert.Empty(t, catalogo.Listar())
	assert.Equal(t, "36", tasa.Obtener().Valor.String())
}

type storeFallido struct{}

func (storeFallido) Guardar(context.Context, string, []byte) error { return errors.New("disco lleno") }
func (storeFallido) Leer(context.Context, string) ([]byte, error) {
	return nil, infra.ErrClaveNoEncontrada
}
func (storeFallido) Cerrar() error  { return nil }
func (storeFallido) Nombre() string { return "fallido" }

func TestEscrituraFallidaNoTocaLaMemoria(t *testing.T) {
	sinc, catalogo, _ := nuevoSincronizador(t, storeFallido{})
	p := catalogo.Crear(model.Producto{Nombre: "Azucar", Stock: decimal.NewFromInt(8)})

	err := sinc.Sincronizar(context.Background(), infra.ClaveProductos)
	require.Error(t, err)

	// the aggregate keeps its committed state
	got, err := catalogo.ObtenerPorID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "8", got.Stock.String())
}
