package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var catalogBucket = []byte("catalog")

// Bolt persiste los valores en un archivo bbolt
type Bolt struct {
	db *bolt.DB
}

// OpenBolt abre (o crea) el archivo y el bucket del catálogo
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt store %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(catalogBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create catalog bucket")
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Read(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		// el slice solo es válido dentro de la transacción
		if raw := tx.Bucket(catalogBucket).Get([]byte(key)); raw != nil {
			value, ok = string(raw), true
		}
		return nil
	})
	if err != nil {
		return "", false, errors.Wrapf(err, "read %s", key)
	}
	return value, ok, nil
}

func (b *Bolt) Write(_ context.Context, key, value string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(catalogBucket).Put([]byte(key), []byte(value))
	})
	return errors.Wrapf(err, "write %s", key)
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
