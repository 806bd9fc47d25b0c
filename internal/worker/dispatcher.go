package worker

// dispatcher.go — in-process job queue for the fire-and-forget side
// effects of a committed mutation: snapshot writes and receipt PDFs.
// Services enqueue and return immediately; the worker goroutines drain
// the channel. A failed job is logged and dropped — the in-memory state
// already committed and the periodic full sync will heal snapshots.

import (
	"context"

	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/model"

	"github.com/rs/zerolog/log"
)

const (
	JobSnapshot = "snapshot"
	JobRecibo   = "recibo"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type   string
	Clave  string
	Compra *model.Compra
}

// Dispatcher hands jobs to the worker pool over a buffered channel.
// A nil *Dispatcher is valid and discards everything, which keeps
// service construction simple in tests.
type Dispatcher struct {
	jobs    chan Job
	sinc    *Sincronizador
	pdfPath string
}

func NewDispatcher(sinc *Sincronizador, pdfPath string) *Dispatcher {
	return &Dispatcher{
		jobs:    make(chan Job, 256),
		sinc:    sinc,
		pdfPath: pdfPath,
	}
}

// EncolarSnapshot schedules a full re-write of the aggregate behind clave.
func (d *Dispatcher) EncolarSnapshot(clave string) {
	if d == nil {
		return
	}
	d.encolar(Job{Type: JobSnapshot, Clave: clave})
}

// EncolarRecibo schedules PDF generation for a completed purchase.
func (d *Dispatcher) EncolarRecibo(compra *model.Compra) {
	if d == nil {
		return
	}
	d.encolar(Job{Type: JobRecibo, Compra: compra})
}

func (d *Dispatcher) encolar(job Job) {
	select {
	case d.jobs <- job:
	default:
		// Queue full. Dropping is safe: snapshots are healed by the
		// periodic full sync and a receipt can be regenerated.
		log.Warn().Str("type", job.Type).Msg("dispatcher: cola llena, job descartado")
	}
}

// Pendientes reports the queue depth (health endpoint).
func (d *Dispatcher) Pendientes() int {
	if d == nil {
		return 0
	}
	return len(d.jobs)
}

// Start launches numWorkers goroutines draining the queue until ctx ends.
func (d *Dispatcher) Start(ctx context.Context, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		go d.run(ctx, i)
	}
	log.Info().Int("workers", numWorkers).Msg("worker pool iniciado")
}

func (d *Dispatcher) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Int("worker", id).Msg("worker detenido")
			return
		case job := <-d.jobs:
			d.procesar(ctx, job)
		}
	}
}

func (d *Dispatcher) procesar(ctx context.Context, job Job) {
	switch job.Type {
	case JobSnapshot:
		if err := d.sinc.Sincronizar(ctx, job.Clave); err != nil {
			log.Error().Err(err).Str("clave", job.Clave).Msg("snapshot fallido")
		}
	case JobRecibo:
		if job.Compra == nil {
			return
		}
		path, err := infra.GenerarReciboPDF(job.Compra, d.pdfPath)
		if err != nil {
			log.Error().Err(err).Str("compra_id", job.Compra.ID.String()).Msg("recibo fallido")
			return
		}
		log.Info().Str("path", path).Msg("recibo generado")
	default:
		log.Error().Str("type", job.Type).Msg("tipo de job desconocido")
	}
}
