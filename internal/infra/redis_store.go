package infra

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisSnapshotPrefix = "snapshot:"

// RedisStore mirrors snapshots to a remote Redis. Every operation runs
// through the circuit breaker so a dead Redis fast-fails instead of
// stalling the snapshot workers on network timeouts.
type RedisStore struct {
	rdb *redis.Client
	cb  *CircuitBreaker
}

func NewRedisStore(rdb *redis.Client, cb *CircuitBreaker) *RedisStore {
	return &RedisStore{rdb: rdb, cb: cb}
}

func (s *RedisStore) Guardar(ctx context.Context, clave string, valor []byte) error {
	return s.cb.Execute(func() error {
		return s.rdb.Set(ctx, redisSnapshotPrefix+clave, valor, 0).Err()
	})
}

func (s *RedisStore) Leer(ctx context.Context, clave string) ([]byte, error) {
	var valor []byte
	err := s.cb.Execute(func() error {
		data, err := s.rdb.Get(ctx, redisSnapshotPrefix+clave).Bytes()
		if err != nil {
			return err
		}
		valor = data
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return nil, ErrClaveNoEncontrada
	}
	if err != nil {
		return nil, err
	}
	return valor, nil
}

func (s *RedisStore) Cerrar() error { return s.rdb.Close() }

func (s *RedisStore) Nombre() string { return "redis" }

// Breaker exposes the circuit state for the health endpoint.
func (s *RedisStore) Breaker() *CircuitBreaker { return s.cb }
