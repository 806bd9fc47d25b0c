package service

import (
	"context"

	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/moneda"
	"github.com/FN2184/tiny-business-manager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarritoService manages the in-progress sale. Cart mutations are pure
// in-memory state and are never snapshotted: an abandoned cart has no
// business meaning after a restart.
type CarritoService interface {
	Agregar(ctx context.Context, req dto.AgregarItemRequest) (*dto.CarritoResponse, error)
	Quitar(ctx context.Context, productoID uuid.UUID) *dto.CarritoResponse
	FijarCantidad(ctx context.Context, productoID uuid.UUID, req dto.FijarCantidadRequest) (*dto.CarritoResponse, error)
	Ver(ctx context.Context) *dto.CarritoResponse
	Vaciar(ctx context.Context) *dto.CarritoResponse
	// CalcularVuelto converts the tendered amount and reports the change
	// due, floored at zero. Underpayment is checkout's concern.
	CalcularVuelto(ctx context.Context, req dto.VueltoRequest) (*dto.VueltoResponse, error)
}

type carritoService struct {
	carrito  repository.CarritoRepository
	catalogo repository.CatalogoRepository
	tasa     repository.TasaRepository
}

func NewCarritoService(
	carrito repository.CarritoRepository,
	catalogo repository.CatalogoRepository,
	tasa repository.TasaRepository,
) CarritoService {
	return &carritoService{carrito: carrito, catalogo: catalogo, tasa: tasa}
}

func (s *carritoService) Agregar(_ context.Context, req dto.AgregarItemRequest) (*dto.CarritoResponse, error) {
	id, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, model.ErrProductoNoEncontrado
	}
	cantidad, err := moneda.ParseCantidad(req.Cantidad)
	if err != nil {
		return nil, err
	}
	producto, err := s.catalogo.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if err := s.carrito.Agregar(producto, cantidad); err != nil {
		return nil, err
	}
	return s.respuesta(), nil
}

func (s *carritoService) Quitar(_ context.Context, productoID uuid.UUID) *dto.CarritoResponse {
	s.carrito.Quitar(productoID)
	return s.respuesta()
}

func (s *carritoService) FijarCantidad(_ context.Context, productoID uuid.UUID, req dto.FijarCantidadRequest) (*dto.CarritoResponse, error) {
	cantidad, err := moneda.ParseStock(req.Cantidad)
	if err != nil {
		return nil, moneda.ErrCantidadInvalida
	}
	producto, err := s.catalogo.ObtenerPorID(productoID)
	if err != nil {
		return nil, err
	}
	if err := s.carrito.FijarCantidad(producto, cantidad); err != nil {
		return nil, err
	}
	return s.respuesta(), nil
}

func (s *carritoService) Ver(_ context.Context) *dto.CarritoResponse {
	return s.respuesta()
}

func (s *carritoService) Vaciar(_ context.Context) *dto.CarritoResponse {
	s.carrito.Vaciar()
	return s.respuesta()
}

func (s *carritoService) CalcularVuelto(_ context.Context, req dto.VueltoRequest) (*dto.VueltoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, model.ErrMontoInvalido
	}
	tasa := s.tasa.Obtener().Valor

	montoUSD := req.Monto
	if req.Moneda == "BS" {
		var err error
		montoUSD, err = moneda.ADolares(req.Monto, tasa)
		if err != nil {
			return nil, err
		}
	}

	diferencia := montoUSD.Sub(s.carrito.SubtotalUSD())
	if diferencia.IsNegative() {
		diferencia = decimal.Zero
	}
	return &dto.VueltoResponse{
		VueltoUSD: moneda.RedondearMoneda(diferencia),
		VueltoBS:  moneda.RedondearMoneda(diferencia.Mul(tasa)),
	}, nil
}

func (s *carritoService) respuesta() *dto.CarritoResponse {
	tasa := s.tasa.Obtener().Valor
	lineas := s.carrito.Lineas()

	out := make([]dto.LineaCarritoResponse, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, dto.LineaCarritoResponse{
			ProductoID:  l.ProductoID.String(),
			Nombre:      l.Nombre,
			Precio:      l.Precio,
			Unidad:      l.Unidad,
			Cantidad:    l.Cantidad,
			SubtotalUSD: l.SubtotalUSD(),
			SubtotalBS:  l.SubtotalBS(tasa),
		})
	}
	return &dto.CarritoResponse{
		Lineas:      out,
		SubtotalUSD: s.carrito.SubtotalUSD(),
		SubtotalBS:  s.carrito.SubtotalBS(tasa),
		Tasa:        tasa,
	}
}
