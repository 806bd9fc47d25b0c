package infra

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreGuardarYLeer(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Guardar(ctx, ClaveProductos, []byte(`[{"nombre":"Cafe"}]`)))

	data, err := store.Leer(ctx, ClaveProductos)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"nombre":"Cafe"}]`, string(data))
}

func TestFileStoreClaveInexistente(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Leer(context.Background(), ClaveClientes)
	assert.ErrorIs(t, err, ErrClaveNoEncontrada)
}

func TestFileStoreSobrescribeAtomicamente(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Guardar(ctx, ClaveTasa, []byte("36.5")))
	require.NoError(t, store.Guardar(ctx, ClaveTasa, []byte("40.25")))

	data, err := store.Leer(ctx, ClaveTasa)
	require.NoError(t, err)
	assert.Equal(t, "40.25", string(data))

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ClaveTasa+".json", filepath.Base(entries[0].Name()))
}
