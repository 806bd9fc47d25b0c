package infra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each snapshot key as <dir>/<clave>.json.
// Writes go to a temp file first and are renamed into place, so a crash
// mid-write never leaves a truncated snapshot behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: crear directorio: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Guardar(_ context.Context, clave string, valor []byte) error {
	destino := s.ruta(clave)
	tmp, err := os.CreateTemp(s.dir, clave+"-*.tmp")
	if err != nil {
		return fmt.Errorf("file store: crear temporal: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(valor); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("file store: escribir %s: %w", clave, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file store: cerrar temporal: %w", err)
	}
	if err := os.Rename(tmpName, destino); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file store: renombrar %s: %w", clave, err)
	}
	return nil
}

func (s *FileStore) Leer(_ context.Context, clave string) ([]byte, error) {
	data, err := os.ReadFile(s.ruta(clave))
	if os.IsNotExist(err) {
		return nil, ErrClaveNoEncontrada
	}
	if err != nil {
		return nil, fmt.Errorf("file store: leer %s: %w", clave, err)
	}
	return data, nil
}

func (s *FileStore) Cerrar() error { return nil }

func (s *FileStore) Nombre() string { return "file" }

func (s *FileStore) ruta(clave string) string {
	return filepath.Join(s.dir, clave+".json")
}
