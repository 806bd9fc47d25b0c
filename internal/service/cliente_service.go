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

// ClienteService manages the customer ledger.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) []dto.ClienteResponse
	// AjustarCredito applies a standalone credit grant or correction.
	AjustarCredito(ctx context.Context, id uuid.UUID, req dto.AjustarCreditoRequest) (*dto.ClienteResponse, error)
	// AbonarCredito applies a customer payment against their debt. An
	// overpayment leaves the balance negative (credit in favor) and is
	// reported back, never floored.
	AbonarCredito(ctx context.Context, id uuid.UUID, req dto.AbonoRequest) (*dto.AbonoResponse, error)
}

type clienteService struct {
	clientes   repository.ClienteRepository
	tasa       repository.TasaRepository
	dispatcher *worker.Dispatcher
}

func NewClienteService(
	clientes repository.ClienteRepository,
	tasa repository.TasaRepository,
	dispatcher *worker.Dispatcher,
) ClienteService {
	return &clienteService{clientes: clientes, tasa: tasa, dispatcher: dispatcher}
}

func (s *clienteService) Crear(_ context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(req.Nombre) == "" {
		return nil, model.ErrNombreRequerido
	}

	c := s.clientes.Crear(model.Cliente{
		Nombre:        strings.TrimSpace(req.Nombre),
		Email:         req.Email,
		Telefono:      req.Telefono,
		LimiteCredito: req.LimiteCredito,
	})

	s.dispatcher.EncolarSnapshot(infra.ClaveClientes)

	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) ObtenerPorID(_ context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.clientes.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Listar(_ context.Context) []dto.ClienteResponse {
	clientes := s.clientes.Listar()
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, clienteToResponse(c))
	}
	return out
}

func (s *clienteService) AjustarCredito(_ context.Context, id uuid.UUID, req dto.AjustarCreditoRequest) (*dto.ClienteResponse, error) {
	c, err := s.clientes.AjustarCredito(id, req.Delta)
	if err != nil {
		return nil, err
	}

	s.dispatcher.EncolarSnapshot(infra.ClaveClientes)

	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) AbonarCredito(_ context.Context, id uuid.UUID, req dto.AbonoRequest) (*dto.AbonoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, model.ErrMontoInvalido
	}

	anterior, err := s.clientes.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}

	tasa := s.tasa.Obtener().Valor
	montoUSD := req.Monto
	if req.Moneda == "BS" {
		montoUSD, err = moneda.ADolares(req.Monto, tasa)
		if err != nil {
			return nil, err
		}
	}
	montoUSD = moneda.RedondearMoneda(montoUSD)

	actualizado, err := s.clientes.AjustarCredito(id, montoUSD.Neg())
	if err != nil {
		return nil, err
	}

	s.dispatcher.EncolarSnapshot(infra.ClaveClientes)

	saldoAFavor := decimal.Zero
	if actualizado.Credito.IsNegative() {
		saldoAFavor = actualizado.Credito.Neg()
	}
	return &dto.AbonoResponse{
		ClienteID:       id.String(),
		MontoUSD:        montoUSD,
		CreditoAnterior: anterior.Credito,
		CreditoNuevo:    actualizado.Credito,
		Sobrepago:       actualizado.Credito.IsNegative(),
		SaldoAFavor:     saldoAFavor,
	}, nil
}

func clienteToResponse(c model.Cliente) dto.ClienteResponse {
	historial := make([]dto.CompraResponse, 0, len(c.Historial))
	for i := range c.Historial {
		historial = append(historial, compraToResponse(&c.Historial[i], false))
	}
	return dto.ClienteResponse{
		ID:             c.ID.String(),
		Nombre:         c.Nombre,
		Email:          c.Email,
		Telefono:       c.Telefono,
		LimiteCredito:  c.LimiteCredito,
		Credito:        c.Credito,
		LimiteExcedido: c.LimiteExcedido(),
		Historial:      historial,
	}
}
