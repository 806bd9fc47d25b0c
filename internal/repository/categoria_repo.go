package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/FN2184/tiny-business-manager/internal/model"
)

// CategoriaRepository is the process-wide category set. Labels are
// normalized to uppercase; the set grows via explicit add or import
// discovery and never shrinks.
type CategoriaRepository interface {
	// Agregar registers the label and returns its normalized form.
	Agregar(nombre string) (string, error)
	Listar() []string
	Reemplazar(categorias []string)
	Snapshot() []string
}

type categoriaRepository struct {
	mu  sync.RWMutex
	set map[string]struct{}
}

func NewCategoriaRepository() CategoriaRepository {
	r := &categoriaRepository{set: make(map[string]struct{})}
	r.set[model.CategoriaPorDefecto] = struct{}{}
	return r
}

func (r *categoriaRepository) Agregar(nombre string) (string, error) {
	normalizada := strings.ToUpper(strings.TrimSpace(nombre))
	if normalizada == "" {
		return "", model.ErrCategoriaVacia
	}

	r.mu.Lock()
	r.set[normalizada] = struct{}{}
	r.mu.Unlock()
	return normalizada, nil
}

func (r *categoriaRepository) Listar() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.set))
	for c := range r.set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (r *categoriaRepository) Reemplazar(categorias []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.set = make(map[string]struct{}, len(categorias)+1)
	r.set[model.CategoriaPorDefecto] = struct{}{}
	for _, c := range categorias {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			r.set[c] = struct{}{}
		}
	}
}

func (r *categoriaRepository) Snapshot() []string {
	return r.Listar()
}
