// Package store contiene los adaptadores clave/valor donde vive el catálogo.
package store

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"catalog-manager/internal/config"
	"catalog-manager/internal/database"
)

// Claves usadas por el catálogo
const (
	ProductsKey   = "products"
	SKUCounterKey = "skuCounter"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// Store lee y escribe valores serializados por nombre.
// Read devuelve ok=false cuando la clave no existe.
type Store interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
	Close() error
}

// Open abre el adaptador indicado por STORE_DRIVER
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case "bolt":
		return OpenBolt(cfg.StorePath)
	case "mongo":
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		coll := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
		return NewMongo(client, coll), nil
	case "memory":
		return NewMemory(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownDriver, "%q", cfg.StoreDriver)
	}
}
