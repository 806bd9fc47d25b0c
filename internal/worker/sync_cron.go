package worker

// sync_cron.go — periodic full mirror of every aggregate to the snapshot
// store. The per-mutation snapshot jobs are fire-and-forget, so a failed
// or dropped write leaves stale data behind; this cron heals it.

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// StartSyncCron schedules SincronizarTodo according to spec
// (e.g. "@every 5m") and stops the scheduler when ctx ends.
func StartSyncCron(ctx context.Context, spec string, sinc *Sincronizador) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		log.Debug().Msg("sync_cron: sincronización completa")
		sinc.SincronizarTodo(ctx)
	})
	if err != nil {
		return nil, err
	}
	c.Start()

	go func() {
		<-ctx.Done()
		c.Stop()
		log.Info().Msg("sync_cron: detenido")
	}()

	log.Info().Str("spec", spec).Msg("sync_cron: iniciado")
	return c, nil
}
