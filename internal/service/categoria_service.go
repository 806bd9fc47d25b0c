package service

import (
	"context"

	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/repository"
	"github.com/FN2184/tiny-business-manager/internal/worker"
)

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (string, error)
	Listar(ctx context.Context) *dto.CategoriaListResponse
}

type categoriaService struct {
	categorias repository.CategoriaRepository
	dispatcher *worker.Dispatcher
}

func NewCategoriaService(categorias repository.CategoriaRepository, dispatcher *worker.Dispatcher) CategoriaService {
	return &categoriaService{categorias: categorias, dispatcher: dispatcher}
}

func (s *categoriaService) Crear(_ context.Context, req dto.CrearCategoriaRequest) (string, error) {
	normalizada, err := s.categorias.Agregar(req.Nombre)
	if err != nil {
		return "", err
	}
	s.dispatcher.EncolarSnapshot(infra.ClaveCategorias)
	return normalizada, nil
}

func (s *categoriaService) Listar(_ context.Context) *dto.CategoriaListResponse {
	return &dto.CategoriaListResponse{Data: s.categorias.Listar()}
}
