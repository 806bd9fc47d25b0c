package infra

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketSnapshots = []byte("snapshots")

// BoltStore keeps every snapshot key in a single bucket of an embedded
// bbolt database. Zero external services, one file on disk.
type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt store: abrir %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bolt store: crear bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Guardar(_ context.Context, clave string, valor []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Put([]byte(clave), valor)
	})
}

func (s *BoltStore) Leer(_ context.Context, clave string) ([]byte, error) {
	var valor []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSnapshots).Get([]byte(clave))
		if v == nil {
			return ErrClaveNoEncontrada
		}
		valor = make([]byte, len(v))
		copy(valor, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return valor, nil
}

func (s *BoltStore) Cerrar() error { return s.db.Close() }

func (s *BoltStore) Nombre() string { return "bolt" }
