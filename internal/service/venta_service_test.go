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

// entorno bundles the real in-memory aggregates: checkout crosses all of
// them, so stubbing would only re-implement the repositories.
type entorno struct {
	carrito  repository.CarritoRepository
	catalogo repository.CatalogoRepository
	clientes repository.ClienteRepository
	tasa     repository.TasaRepository
	ventas   VentaService
}

func nuevoEntorno(t *testing.T, tasa string) *entorno {
	t.Helper()
	e := &entorno{
		carrito:  repository.NewCarritoRepository(),
		catalogo: repository.NewCatalogoRepository(),
		clientes: repository.NewClienteRepository(),
		tasa:     repository.NewTasaRepository(decimal.RequireFromString(tasa)),
	}
	// nil dispatcher: side-effect jobs are disabled in unit tests
	e.ventas = NewVentaService(e.carrito, e.catalogo, e.clientes, e.tasa, nil)
	return e
}

func (e *entorno) conProducto(t *testing.T, nombre, precio, stock string) model.Producto {
	t.Helper()
	return e.catalogo.Crear(model.Producto{
		Nombre:      nombre,
		Precio:      decimal.RequireFromString(precio),
		Stock:       decimal.RequireFromString(stock),
		StockMinimo: decimal.NewFromInt(1),
	})
}

func (e *entorno) enCarrito(t *testing.T, p model.Producto, cantidad string) {
	t.Helper()
	require.NoError(t, e.carrito.Agregar(p, decimal.RequireFromString(cantidad)))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func montoPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestCheckoutEfectivoPagado(t *testing.T) {
	e := nuevoEntorno(t, "35.5")
	p := e.conProducto(t, "Harina", "10.00", "5")
	e.enCarrito(t, p, "3")

	resp, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{
		Metodo:        "efectivo",
		MontoRecibido: montoPtr("30"),
	})
	require.NoError(t, err)

	assert.Equal(t, "pagado", resp.Estado)
	assert.Equal(t, "30.00", resp.TotalUSD.StringFixed(2))
	assert.Equal(t, "1065.00", resp.TotalBS.StringFixed(2))
	assert.Equal(t, "ocasional", resp.TipoCliente)
	assert.False(t, resp.AdvertenciaLimite)

	// stock decremented, sales counter up, cart cleared
	got, err := e.catalogo.ObtenerPorID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "2", got.Stock.String())
	assert.Equal(t, "3", got.VecesVendido.String())
	assert.True(t, e.carrito.Vacio())
}

func TestCheckoutEfectivoConVuelto(t *testing.T) {
	e := nuevoEntorno(t, "36")
	p := e.conProducto(t, "Cafe", "7.50", "10")
	e.enCarrito(t, p, "2")

	resp, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{
		Metodo:        "efectivo",
		MontoRecibido: montoPtr("20"),
	})
	require.NoError(t, err)

	assert.Equal(t, "pagado", resp.Estado)
	assert.Equal(t, "5.00", resp.VueltoUSD.StringFixed(2))
	assert.Equal(t, "180.00", resp.VueltoBS.StringFixed(2))
}

func TestCheckoutParcialAcreditaAlCliente(t *testing.T) {
	e := nuevoEntorno(t, "36")
	p := e.conProducto(t, "Queso", "50.00", "10")
	e.enCarrito(t, p, "2") // total 100
	c := e.clientes.Crear(model.Cliente{Nombre: "Maria", LimiteCredito: dec("500")})
	id := c.ID.String()

	resp, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{
		Metodo:        "efectivo",
		ClienteID:     &id,
		MontoRecibido: montoPtr("60"),
	})
	require.NoError(t, err)

	assert.Equal(t, "parcial", resp.Estado)
	assert.Equal(t, "regular", resp.TipoCliente)
	assert.False(t, resp.AdvertenciaLimite)

	got, err := e.clientes.ObtenerPorID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "40", got.Credito.String(), "el faltante pasa a crédito")
	require.Len(t, got.Historial, 1)
	assert.Equal(t, model.EstadoParcial, got.Historial[0].Estado)
}

func TestCheckoutCredito(t *testing.T) {
	e := nuevoEntorno(t, "36")
	p := e.conProducto(t, "Aceite", "25.00", "10")
	e.enCarrito(t, p, "3") // total 75
	c := e.clientes.Crear(model.Cliente{Nombre: "Pedro", LimiteCredito: dec("200")})
	id := c.ID.String()

	resp, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{
		Metodo:    "credito",
		ClienteID: &id,
	})
	require.NoError(t, err)

	assert.Equal(t, "credito", resp.Estado)
	got, err := e.clientes.ObtenerPorID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "75", got.Credito.String())
}

func TestCheckoutCreditoExcedeLimiteConAdvertencia(t *testing.T) {
	e := nuevoEntorno(t, "35.5")
	p := e.conProducto(t, "Jamon", "10.00", "5")
	e.enCarrito(t, p, "3") // total 30
	c := e.clientes.Crear(model.Cliente{Nombre: "Ana", LimiteCredito: dec("20")})
	id := c.ID.String()

	resp, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{
		Metodo:    "credito",
		ClienteID: &id,
	})
	require.NoError(t, err, "el límite es advisorio, nunca bloquea")

	assert.Equal(t, "credito", resp.Estado)
	assert.True(t, resp.AdvertenciaLimite, "30 > límite 20")

	got, err := e.clientes.ObtenerPorID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "30", got.Credito.String())
}

func TestCheckoutPuntoYBiopagoLiquidanCompleto(t *testing.T) {
	for _, metodo := range []string{"punto", "biopago"} {
		e := nuevoEntorno(t, "36")
		p := e.conProducto(t, "Pasta", "4.00", "10")
		e.enCarrito(t, p, "2")

		resp, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{Metodo: metodo})
		require.NoError(t, err, metodo)
		assert.Equal(t, "pagado", resp.Estado, metodo)
		assert.Nil(t, resp.MontoPagado, metodo)
	}
}

func TestCheckoutCarritoVacio(t *testing.T) {
	e := nuevoEntorno(t, "36")
	_, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{Metodo: "efectivo"})
	assert.ErrorIs(t, err, model.ErrCarritoVacio)
}

func TestCheckoutCreditoSinClienteFalla(t *testing.T) {
	e := nuevoEntorno(t, "36")
	p := e.conProducto(t, "Arroz", "2.00", "10")
	e.enCarrito(t, p, "1")

	_, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{Metodo: "credito"})
	assert.ErrorIs(t, err, model.ErrClienteRequerido)

	// nothing mutated
	got, _ := e.catalogo.ObtenerPorID(p.ID)
	assert.Equal(t, "10", got.Stock.String())
	assert.False(t, e.carrito.Vacio())
}

func TestCheckoutPagoInsuficienteSinCliente(t *testing.T) {
	e := nuevoEntorno(t, "36")
	p := e.conProducto(t, "Leche", "10.00", "10")
	e.enCarrito(t, p, "2") // total 20

	_, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{
		Metodo:        "efectivo",
		MontoRecibido: montoPtr("15"),
	})

	var pagoErr *model.PagoInsuficienteError
	require.ErrorAs(t, err, &pagoErr)
	assert.Equal(t, "5", pagoErr.Faltante().String())

	// atomicity: cart and catalog untouched
	assert.False(t, e.carrito.Vacio())
	got, _ := e.catalogo.ObtenerPorID(p.ID)
	assert.Equal(t, "10", got.Stock.String())
	assert.True(t, got.VecesVendido.IsZero())
}

func TestCheckoutMontoInvalido(t *testing.T) {
	e := nuevoEntorno(t, "36")
	p := e.conProducto(t, "Pan", "1.00", "10")
	e.enCarrito(t, p, "1")

	_, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{
		Metodo:        "efectivo",
		MontoRecibido: montoPtr("0"),
	})
	assert.ErrorIs(t, err, model.ErrMontoInvalido)
	assert.False(t, e.carrito.Vacio())
}

func TestCheckoutClienteDesconocido(t *testing.T) {
	e := nuevoEntorno(t, "36")
	p := e.conProducto(t, "Atun", "3.00", "10")
	e.enCarrito(t, p, "1")
	id := uuid.NewString()

	_, err := e.ventas.Checkout(context.Background(), dto.CheckoutRequest{
		Metodo:    "credito",
		ClienteID: &id,
	})
	assert.ErrorIs(t, err, model.ErrClienteNoEncontrado)
	assert.False(t, e.carrito.Vacio())
}

func TestCheckoutStockSePisaEnCero(t *testing.T) {
	e := nuevoEntorno(t, "36")
	p := e.conProducto(t, "Huevos", "6.00", "2")
	e.enCarrito(t, p, "2")

	// another decrement raced the sale down to zero
	_, err := e.catalogo.DescontarStock(p.ID, dec("1.5"))
	require.NoError(t, err)

	_, err = e.ventas.Checkout(context.Background(), dto.CheckoutRequest{Metodo: "punto"})
	require.NoError(t, err)

	got, _ := e.catalogo.ObtenerPorID(p.ID)
	assert.True(t, got.Stock.IsZero(), "nunca negativo")
}
