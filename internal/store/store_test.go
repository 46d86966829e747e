package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-manager/internal/config"
	"catalog-manager/internal/database"
)

// exerciseStore comprueba el contrato común de los adaptadores
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Read(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Write(ctx, SKUCounterKey, "1"))
	require.NoError(t, s.Write(ctx, SKUCounterKey, "2"))

	value, ok, err := s.Read(ctx, SKUCounterKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", value)

	require.NoError(t, s.Write(ctx, ProductsKey, "[]"))
	value, ok, err = s.Read(ctx, ProductsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestBoltStore(t *testing.T) {
	s, err := OpenBolt(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestBoltStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()

	s, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, SKUCounterKey, "42"))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	value, ok, err := s.Read(ctx, SKUCounterKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", value)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping mongo integration test")
	}
	ctx := context.Background()

	client, err := database.Connect(ctx, uri)
	if err != nil {
		t.Skip("cannot reach mongo, skipping integration test:", err)
	}
	coll := client.Database("catalog_manager_test").Collection(t.Name())
	defer coll.Drop(ctx)

	s := NewMongo(client, coll)
	defer s.Close()

	exerciseStore(t, s)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, &config.Config{StoreDriver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(ctx, &config.Config{StoreDriver: "bolt", StorePath: filepath.Join(t.TempDir(), "c.db")})
	require.NoError(t, err)
	assert.IsType(t, &Bolt{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, &config.Config{StoreDriver: "mongo"})
	assert.ErrorIs(t, err, database.ErrMissingURI)

	_, err = Open(ctx, &config.Config{StoreDriver: "redis"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
