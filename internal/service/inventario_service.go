package service

import (
	"context"

	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/moneda"
	"github.com/FN2184/tiny-business-manager/internal/repository"
	"github.com/FN2184/tiny-business-manager/internal/worker"

	"github.com/google/uuid"
)

// TopVendidosPorDefecto bounds the best-sellers report when the caller
// does not pass a limit.
const TopVendidosPorDefecto = 10

// InventarioService covers stock management and the inventory reports.
type InventarioService interface {
	// ActualizarStock replaces the absolute stock value; negatives are
	// rejected before touching the aggregate.
	ActualizarStock(ctx context.Context, id uuid.UUID, req dto.ActualizarStockRequest) (*dto.ProductoResponse, error)
	StockBajo(ctx context.Context) []dto.ProductoResponse
	MasVendidos(ctx context.Context, limite int) []dto.ProductoResponse
}

type inventarioService struct {
	catalogo   repository.CatalogoRepository
	tasa       repository.TasaRepository
	dispatcher *worker.Dispatcher
}

func NewInventarioService(
	catalogo repository.CatalogoRepository,
	tasa repository.TasaRepository,
	dispatcher *worker.Dispatcher,
) InventarioService {
	return &inventarioService{catalogo: catalogo, tasa: tasa, dispatcher: dispatcher}
}

func (s *inventarioService) ActualizarStock(_ context.Context, id uuid.UUID, req dto.ActualizarStockRequest) (*dto.ProductoResponse, error) {
	nuevo, err := moneda.ParseStock(req.Stock)
	if err != nil {
		return nil, err
	}
	p, err := s.catalogo.ActualizarStock(id, nuevo)
	if err != nil {
		return nil, err
	}

	s.dispatcher.EncolarSnapshot(infra.ClaveProductos)

	resp := productoToResponse(p, s.tasa.Obtener().Valor)
	return &resp, nil
}

func (s *inventarioService) StockBajo(_ context.Context) []dto.ProductoResponse {
	return s.responder(s.catalogo.StockBajo())
}

func (s *inventarioService) MasVendidos(_ context.Context, limite int) []dto.ProductoResponse {
	if limite <= 0 {
		limite = TopVendidosPorDefecto
	}
	return s.responder(s.catalogo.MasVendidos(limite))
}

func (s *inventarioService) responder(productos []model.Producto) []dto.ProductoResponse {
	tasa := s.tasa.Obtener().Valor
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, productoToResponse(p, tasa))
	}
	return out
}
