package service

// venta_service.go — the checkout orchestrator. A sale runs through two
// phases: every precondition is validated before anything mutates, then
// the commit executes straight through (credit, stock, purchase record,
// cart clear) followed by fire-and-forget snapshot and receipt jobs.
// A validation failure therefore leaves cart, catalog and ledger exactly
// as they were.

import (
	"context"
	"time"

	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/repository"
	"github.com/FN2184/tiny-business-manager/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type VentaService interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CompraResponse, error)
}

type ventaService struct {
	carrito    repository.CarritoRepository
	catalogo   repository.CatalogoRepository
	clientes   repository.ClienteRepository
	tasa       repository.TasaRepository
	dispatcher *worker.Dispatcher
}

func NewVentaService(
	carrito repository.CarritoRepository,
	catalogo repository.CatalogoRepository,
	clientes repository.ClienteRepository,
	tasa repository.TasaRepository,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		carrito:    carrito,
		catalogo:   catalogo,
		clientes:   clientes,
		tasa:       tasa,
		dispatcher: dispatcher,
	}
}

func (s *ventaService) Checkout(_ context.Context, req dto.CheckoutRequest) (*dto.CompraResponse, error) {
	// ── Validación ───────────────────────────────────────────────────────
	if s.carrito.Vacio() {
		return nil, model.ErrCarritoVacio
	}
	metodo := model.MetodoPago(req.Metodo)
	if !metodo.Valido() {
		return nil, model.ErrMetodoPagoInvalido
	}

	var cliente *model.Cliente
	if req.ClienteID != nil {
		id, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, model.ErrClienteNoEncontrado
		}
		c, err := s.clientes.ObtenerPorID(id)
		if err != nil {
			return nil, err
		}
		cliente = &c
	}
	if metodo == model.MetodoCredito && cliente == nil {
		return nil, model.ErrClienteRequerido
	}

	tasa := s.tasa.Obtener().Valor
	totalUSD := s.carrito.SubtotalUSD()
	totalBS := s.carrito.SubtotalBS(tasa)

	// Exhaustive over the closed method set. Punto and biopago settle in
	// full at the terminal: no amount tendered, no credit fallback.
	estado := model.EstadoPagado
	deuda := decimal.Zero
	var montoPagado *decimal.Decimal
	switch metodo {
	case model.MetodoCredito:
		estado = model.EstadoCredito
		deuda = totalUSD
	case model.MetodoEfectivo:
		if req.MontoRecibido != nil {
			monto := *req.MontoRecibido
			if !monto.IsPositive() {
				return nil, model.ErrMontoInvalido
			}
			montoPagado = &monto
			if monto.LessThan(totalUSD) {
				if cliente == nil {
					return nil, &model.PagoInsuficienteError{Total: totalUSD, Recibido: monto}
				}
				estado = model.EstadoParcial
				deuda = totalUSD.Sub(monto)
			}
		}
	case model.MetodoPunto, model.MetodoBiopago:
	}

	// ── Commit ───────────────────────────────────────────────────────────
	if cliente != nil && deuda.IsPositive() {
		actualizado, err := s.clientes.AjustarCredito(cliente.ID, deuda)
		if err != nil {
			return nil, err
		}
		cliente = &actualizado
	}

	lineas := s.carrito.Lineas()
	items := make([]model.LineaCompra, 0, len(lineas))
	for _, l := range lineas {
		items = append(items, model.LineaCompra{
			ProductoID: l.ProductoID,
			Nombre:     l.Nombre,
			Precio:     l.Precio,
			Cantidad:   l.Cantidad,
			Subtotal:   l.SubtotalUSD(),
		})
	}

	compra := model.Compra{
		ID:          uuid.New(),
		Fecha:       time.Now(),
		Lineas:      items,
		TotalUSD:    totalUSD,
		TotalBS:     totalBS,
		Tasa:        tasa,
		Metodo:      metodo,
		Estado:      estado,
		MontoPagado: montoPagado,
		TipoCliente: model.ClienteOcasional,
	}

	advertencia := false
	if cliente != nil {
		compra.TipoCliente = model.ClienteRegular
		id := cliente.ID
		compra.ClienteID = &id

		_, excedido, err := s.clientes.RegistrarCompra(id, compra)
		if err != nil {
			return nil, err
		}
		advertencia = excedido
		if excedido {
			log.Warn().
				Str("cliente_id", id.String()).
				Str("total", totalUSD.StringFixed(2)).
				Msg("límite de crédito excedido, la venta continúa")
		}
	}

	for _, item := range items {
		if _, err := s.catalogo.DescontarStock(item.ProductoID, item.Cantidad); err != nil {
			// The product vanished mid-sale; nothing to decrement.
			log.Error().Err(err).Str("producto_id", item.ProductoID.String()).Msg("descuento de stock fallido")
		}
	}

	s.carrito.Vaciar()

	s.dispatcher.EncolarSnapshot(infra.ClaveProductos)
	if cliente != nil {
		s.dispatcher.EncolarSnapshot(infra.ClaveClientes)
	}
	s.dispatcher.EncolarRecibo(&compra)

	resp := compraToResponse(&compra, advertencia)
	return &resp, nil
}

func compraToResponse(compra *model.Compra, advertencia bool) dto.CompraResponse {
	lineas := make([]dto.LineaCompraResponse, 0, len(compra.Lineas))
	for _, l := range compra.Lineas {
		lineas = append(lineas, dto.LineaCompraResponse{
			ProductoID: l.ProductoID.String(),
			Nombre:     l.Nombre,
			Precio:     l.Precio,
			Cantidad:   l.Cantidad,
			Subtotal:   l.Subtotal,
		})
	}

	vueltoUSD := decimal.Zero
	if compra.Estado == model.EstadoPagado && compra.MontoPagado != nil {
		if diff := compra.MontoPagado.Sub(compra.TotalUSD); diff.IsPositive() {
			vueltoUSD = diff.Round(2)
		}
	}

	var clienteID *string
	if compra.ClienteID != nil {
		id := compra.ClienteID.String()
		clienteID = &id
	}

	return dto.CompraResponse{
		ID:                compra.ID.String(),
		Fecha:             compra.Fecha.UTC().Format(time.RFC3339),
		Lineas:            lineas,
		TotalUSD:          compra.TotalUSD,
		TotalBS:           compra.TotalBS,
		Tasa:              compra.Tasa,
		Metodo:            string(compra.Metodo),
		Estado:            string(compra.Estado),
		MontoPagado:       compra.MontoPagado,
		VueltoUSD:         vueltoUSD,
		VueltoBS:          vueltoUSD.Mul(compra.Tasa).Round(2),
		TipoCliente:       string(compra.TipoCliente),
		ClienteID:         clienteID,
		AdvertenciaLimite: advertencia,
	}
}
