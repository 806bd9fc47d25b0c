package service

import (
	"context"
	"testing"

	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoClienteService(t *testing.T, tasa string) (ClienteService, repository.ClienteRepository) {
	t.Helper()
	clientes := repository.NewClienteRepository()
	tasaRepo := repository.NewTasaRepository(decimal.RequireFromString(tasa))
	return NewClienteService(clientes, tasaRepo, nil), clientes
}

func TestCrearClienteDesdeRequest(t *testing.T) {
	svc, _ := nuevoClienteService(t, "36")

	resp, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		Nombre:        "  Carmen ",
		LimiteCredito: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "Carmen", resp.Nombre)
	assert.True(t, resp.Credito.IsZero())
	assert.Empty(t, resp.Historial)

	_, err = svc.Crear(context.Background(), dto.CrearClienteRequest{Nombre: "   "})
	assert.ErrorIs(t, err, model.ErrNombreRequerido)
}

func TestAbonarEnDolares(t *testing.T) {
	svc, repo := nuevoClienteService(t, "36")
	c := repo.Crear(model.Cliente{Nombre: "Jose", LimiteCredito: decimal.NewFromInt(100)})
	_, err := repo.AjustarCredito(c.ID, decimal.NewFromInt(40))
	require.NoError(t, err)

	resp, err := svc.AbonarCredito(context.Background(), c.ID, dto.AbonoRequest{
		Monto:  decimal.NewFromInt(25),
		Moneda: "USD",
	})
	require.NoError(t, err)

	assert.Equal(t, "40", resp.CreditoAnterior.String())
	assert.Equal(t, "15", resp.CreditoNuevo.String())
	assert.False(t, resp.Sobrepago)
}

func TestAbonarEnBolivaresConvierte(t *testing.T) {
	svc, repo := nuevoClienteService(t, "36")
	c := repo.Crear(model.Cliente{Nombre: "Luisa"})
	_, err := repo.AjustarCredito(c.ID, decimal.NewFromInt(10))
	require.NoError(t, err)

	// 540 BS a 36 BS/USD = 15 USD
	resp, err := svc.AbonarCredito(context.Background(), c.ID, dto.AbonoRequest{
		Monto:  decimal.NewFromInt(540),
		Moneda: "BS",
	})
	require.NoError(t, err)

	assert.Equal(t, "15", resp.MontoUSD.String())
	assert.Equal(t, "-5", resp.CreditoNuevo.String(), "sobrepago queda a favor")
	assert.True(t, resp.Sobrepago)
	assert.Equal(t, "5", resp.SaldoAFavor.String())
}

func TestAbonarValidaciones(t *testing.T) {
	svc, repo := nuevoClienteService(t, "36")
	c := repo.Crear(model.Cliente{Nombre: "Rosa"})

	_, err := svc.AbonarCredito(context.Background(), c.ID, dto.AbonoRequest{Monto: decimal.Zero, Moneda: "USD"})
	assert.ErrorIs(t, err, model.ErrMontoInvalido)

	_, err = svc.AbonarCredito(context.Background(), uuid.New(), dto.AbonoRequest{Monto: decimal.NewFromInt(1), Moneda: "USD"})
	assert.ErrorIs(t, err, model.ErrClienteNoEncontrado)
}

func TestAjustarCredito(t *testing.T) {
	svc, repo := nuevoClienteService(t, "36")
	c := repo.Crear(model.Cliente{Nombre: "Elena", LimiteCredito: decimal.NewFromInt(10)})

	resp, err := svc.AjustarCredito(context.Background(), c.ID, dto.AjustarCreditoRequest{Delta: decimal.NewFromInt(25)})
	require.NoError(t, err)
	assert.Equal(t, "25", resp.Credito.String())
	assert.True(t, resp.LimiteExcedido)
}
