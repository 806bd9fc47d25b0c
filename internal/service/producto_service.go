package service

import (
	"context"
	"strings"

	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/moneda"
	"github.com/FN2184/tiny-business-manager/internal/repository"
	"github.com/FN2184/tiny-business-manager/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductoService covers manual catalog management. Note that the manual
// add path never deduplicates by name; only bulk import does.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
}

type productoService struct {
	catalogo   repository.CatalogoRepository
	categorias repository.CategoriaRepository
	tasa       repository.TasaRepository
	dispatcher *worker.Dispatcher
}

func NewProductoService(
	catalogo repository.CatalogoRepository,
	categorias repository.CategoriaRepository,
	tasa repository.TasaRepository,
	dispatcher *worker.Dispatcher,
) ProductoService {
	return &productoService{catalogo: catalogo, categorias: categorias, tasa: tasa, dispatcher: dispatcher}
}

func (s *productoService) Crear(_ context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if strings.TrimSpace(req.Nombre) == "" {
		return nil, model.ErrNombreRequerido
	}
	stock, err := moneda.ParseStock(req.Stock)
	if err != nil {
		return nil, err
	}

	minimo := decimal.NewFromInt(5)
	if req.StockMinimo != nil {
		minimo, err = moneda.ParseStock(*req.StockMinimo)
		if err != nil {
			return nil, err
		}
	}

	categoria := model.CategoriaPorDefecto
	if strings.TrimSpace(req.Categoria) != "" {
		categoria, err = s.categorias.Agregar(req.Categoria)
		if err != nil {
			return nil, err
		}
	}

	// The operator enters cost and profit percentage; the sale price is
	// derived: precio = costo × (1 + pct/100).
	precio := req.Costo.Mul(decimal.NewFromInt(1).Add(req.GananciaPct.Div(cienDecimal))).Round(2)

	p := s.catalogo.Crear(model.Producto{
		Nombre:        strings.TrimSpace(req.Nombre),
		Categoria:     categoria,
		Clave:         req.Clave,
		Costo:         req.Costo,
		Precio:        precio,
		Stock:         stock,
		StockMinimo:   minimo,
		Unidad:        req.Unidad,
		InfoAdicional: req.InfoAdicional,
	})

	s.dispatcher.EncolarSnapshot(infra.ClaveProductos)
	s.dispatcher.EncolarSnapshot(infra.ClaveCategorias)

	resp := s.productoToResponse(p)
	return &resp, nil
}

func (s *productoService) ObtenerPorID(_ context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.catalogo.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	resp := s.productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Listar(_ context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	todos := s.catalogo.Listar()

	var filtrados []model.Producto
	nombre := strings.ToLower(strings.TrimSpace(filter.Nombre))
	categoria := strings.ToUpper(strings.TrimSpace(filter.Categoria))
	for _, p := range todos {
		if nombre != "" && !strings.Contains(strings.ToLower(p.Nombre), nombre) {
			continue
		}
		if categoria != "" && strings.ToUpper(p.Categoria) != categoria {
			continue
		}
		filtrados = append(filtrados, p)
	}

	total := len(filtrados)
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	inicio := (page - 1) * limit
	if inicio > total {
		inicio = total
	}
	fin := inicio + limit
	if fin > total {
		fin = total
	}

	data := make([]dto.ProductoResponse, 0, fin-inicio)
	for _, p := range filtrados[inicio:fin] {
		data = append(data, s.productoToResponse(p))
	}

	return &dto.ProductoListResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

var cienDecimal = decimal.NewFromInt(100)

func (s *productoService) productoToResponse(p model.Producto) dto.ProductoResponse {
	return productoToResponse(p, s.tasa.Obtener().Valor)
}

// productoToResponse is shared with the inventory reports.
func productoToResponse(p model.Producto, tasa decimal.Decimal) dto.ProductoResponse {
	precioBS := p.Precio.Mul(tasa).Round(2)
	return dto.ProductoResponse{
		ID:             p.ID.String(),
		Nombre:         p.Nombre,
		Categoria:      p.Categoria,
		Clave:          p.Clave,
		Costo:          p.Costo,
		Precio:         p.Precio,
		PrecioBS:       precioBS,
		GananciaPct:    p.GananciaPct,
		MargenGanancia: p.MargenGanancia,
		Stock:          p.Stock,
		StockMinimo:    p.StockMinimo,
		Unidad:         p.Unidad,
		VecesVendido:   p.VecesVendido,
		StockBajo:      p.BajoStock(),
	}
}
