package repository

import (
	"testing"
	"time"

	"github.com/FN2184/tiny-business-manager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearClienteFuerzaCreditoCero(t *testing.T) {
	repo := NewClienteRepository()

	c := repo.Crear(model.Cliente{
		Nombre:        "Maria",
		Credito:       decimal.NewFromInt(500),
		LimiteCredito: decimal.NewFromInt(100),
		Historial:     []model.Compra{{ID: uuid.New()}},
	})

	assert.True(t, c.Credito.IsZero())
	assert.Empty(t, c.Historial)
	assert.Equal(t, "100", c.LimiteCredito.String())
}

func TestAjustarCreditoPermiteNegativo(t *testing.T) {
	repo := NewClienteRepository()
	c := repo.Crear(model.Cliente{Nombre: "Pedro"})

	got, err := repo.AjustarCredito(c.ID, decimal.NewFromInt(30))
	require.NoError(t, err)
	assert.Equal(t, "30", got.Credito.String())

	// an overpayment leaves credit in the customer's favor
	got, err = repo.AjustarCredito(c.ID, decimal.NewFromInt(-50))
	require.NoError(t, err)
	assert.Equal(t, "-20", got.Credito.String())
}

func TestAjustarCreditoClienteDesconocido(t *testing.T) {
	repo := NewClienteRepository()
	_, err := repo.AjustarCredito(uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, model.ErrClienteNoEncontrado)
}

func TestRegistrarCompraPrependeYSenalaLimite(t *testing.T) {
	repo := NewClienteRepository()
	c := repo.Crear(model.Cliente{Nombre: "Ana", LimiteCredito: decimal.NewFromInt(20)})

	primera := model.Compra{ID: uuid.New(), Fecha: time.Now().Add(-time.Hour)}
	segunda := model.Compra{ID: uuid.New(), Fecha: time.Now()}

	_, excedido, err := repo.RegistrarCompra(c.ID, primera)
	require.NoError(t, err)
	assert.False(t, excedido)

	_, err = repo.AjustarCredito(c.ID, decimal.NewFromInt(30))
	require.NoError(t, err)

	got, excedido, err := repo.RegistrarCompra(c.ID, segunda)
	require.NoError(t, err)
	assert.True(t, excedido, "30 > limite 20")

	require.Len(t, got.Historial, 2)
	assert.Equal(t, segunda.ID, got.Historial[0].ID, "la mas reciente va primero")
	assert.Equal(t, primera.ID, got.Historial[1].ID)
}

func TestClonadoNoExponeElAggregate(t *testing.T) {
	repo := NewClienteRepository()
	c := repo.Crear(model.Cliente{Nombre: "Luis"})
	_, _, err := repo.RegistrarCompra(c.ID, model.Compra{ID: uuid.New()})
	require.NoError(t, err)

	copia, err := repo.ObtenerPorID(c.ID)
	require.NoError(t, err)
	copia.Historial[0].ID = uuid.Nil
	copia.Credito = decimal.NewFromInt(999)

	intacto, err := repo.ObtenerPorID(c.ID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, intacto.Historial[0].ID)
	assert.True(t, intacto.Credito.IsZero())
}
