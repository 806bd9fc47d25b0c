package service

import (
	"context"
	"time"

	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/repository"
	"github.com/FN2184/tiny-business-manager/internal/worker"
)

type TasaService interface {
	Obtener(ctx context.Context) *dto.TasaResponse
	Fijar(ctx context.Context, req dto.FijarTasaRequest) (*dto.TasaResponse, error)
}

type tasaService struct {
	tasa       repository.TasaRepository
	dispatcher *worker.Dispatcher
}

func NewTasaService(tasa repository.TasaRepository, dispatcher *worker.Dispatcher) TasaService {
	return &tasaService{tasa: tasa, dispatcher: dispatcher}
}

func (s *tasaService) Obtener(_ context.Context) *dto.TasaResponse {
	t := s.tasa.Obtener()
	return &dto.TasaResponse{Valor: t.Valor, ActualizadaEn: t.ActualizadaEn.UTC().Format(time.RFC3339)}
}

func (s *tasaService) Fijar(_ context.Context, req dto.FijarTasaRequest) (*dto.TasaResponse, error) {
	t, err := s.tasa.Fijar(req.Valor)
	if err != nil {
		return nil, err
	}

	s.dispatcher.EncolarSnapshot(infra.ClaveTasa)

	return &dto.TasaResponse{Valor: t.Valor, ActualizadaEn: t.ActualizadaEn.UTC().Format(time.RFC3339)}, nil
}
