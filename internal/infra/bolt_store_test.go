package infra

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStoreGuardarYLeer(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer store.Cerrar()
	ctx := context.Background()

	require.NoError(t, store.Guardar(ctx, ClaveCategorias, []byte(`["VIVERES"]`)))
	require.NoError(t, store.Guardar(ctx, ClaveCategorias, []byte(`["VIVERES","BEBIDAS"]`)))

	data, err := store.Leer(ctx, ClaveCategorias)
	require.NoError(t, err)
	assert.JSONEq(t, `["VIVERES","BEBIDAS"]`, string(data))
}

func TestBoltStoreClaveInexistente(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer store.Cerrar()

	_, err = store.Leer(context.Background(), ClaveTasa)
	assert.ErrorIs(t, err, ErrClaveNoEncontrada)
}
