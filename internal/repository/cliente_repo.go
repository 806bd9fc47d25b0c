package repository

import (
	"sync"
	"time"

	"github.com/FN2184/tiny-business-manager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClienteRepository owns the customer ledger. Credit mutations happen
// under the aggregate lock so a checkout's read-adjust-record sequence
// cannot interleave with another mutation.
type ClienteRepository interface {
	// Crear ignores any supplied credit or history: every customer
	// starts at zero with an empty history.
	Crear(c model.Cliente) model.Cliente
	ObtenerPorID(id uuid.UUID) (model.Cliente, error)
	Listar() []model.Cliente
	// AjustarCredito adds delta to the running credit. The result may go
	// negative (an overpayment held in the customer's favor).
	AjustarCredito(id uuid.UUID, delta decimal.Decimal) (model.Cliente, error)
	// RegistrarCompra prepends the purchase to the history and reports
	// whether the running credit now exceeds the advisory limit.
	RegistrarCompra(id uuid.UUID, compra model.Compra) (model.Cliente, bool, error)
	Reemplazar(clientes []model.Cliente)
	Snapshot() []model.Cliente
}

type clienteRepository struct {
	mu       sync.RWMutex
	clientes []*model.Cliente
	porID    map[uuid.UUID]*model.Cliente
}

func NewClienteRepository() ClienteRepository {
	return &clienteRepository{porID: make(map[uuid.UUID]*model.Cliente)}
}

func (r *clienteRepository) Crear(c model.Cliente) model.Cliente {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Credito = decimal.Zero
	c.Historial = nil
	c.CreatedAt = time.Now()
	if c.LimiteCredito.IsNegative() {
		c.LimiteCredito = decimal.Zero
	}

	cp := c
	r.clientes = append(r.clientes, &cp)
	r.porID[cp.ID] = &cp
	return clonarCliente(&cp)
}

func (r *clienteRepository) ObtenerPorID(id uuid.UUID) (model.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.porID[id]
	if !ok {
		return model.Cliente{}, model.ErrClienteNoEncontrado
	}
	return clonarCliente(c), nil
}

func (r *clienteRepository) Listar() []model.Cliente {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, clonarCliente(c))
	}
	return out
}

func (r *clienteRepository) AjustarCredito(id uuid.UUID, delta decimal.Decimal) (model.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.porID[id]
	if !ok {
		return model.Cliente{}, model.ErrClienteNoEncontrado
	}
	c.Credito = c.Credito.Add(delta)
	return clonarCliente(c), nil
}

func (r *clienteRepository) RegistrarCompra(id uuid.UUID, compra model.Compra) (model.Cliente, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.porID[id]
	if !ok {
		return model.Cliente{}, false, model.ErrClienteNoEncontrado
	}
	c.Historial = append([]model.Compra{compra}, c.Historial...)
	return clonarCliente(c), c.LimiteExcedido(), nil
}

func (r *clienteRepository) Reemplazar(clientes []model.Cliente) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clientes = make([]*model.Cliente, 0, len(clientes))
	r.porID = make(map[uuid.UUID]*model.Cliente, len(clientes))
	for i := range clientes {
		cp := clientes[i]
		r.clientes = append(r.clientes, &cp)
		r.porID[cp.ID] = &cp
	}
}

func (r *clienteRepository) Snapshot() []model.Cliente {
	return r.Listar()
}

// clonarCliente copies the entry including its history slice, so callers
// can never mutate the aggregate through a returned value.
func clonarCliente(c *model.Cliente) model.Cliente {
	cp := *c
	if c.Historial != nil {
		cp.Historial = make([]model.Compra, len(c.Historial))
		copy(cp.Historial, c.Historial)
	}
	return cp
}
