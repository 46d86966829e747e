package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoTimeout = 5 * time.Second

// kvDocument es un par clave/valor; la clave es el _id
type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Mongo guarda cada clave como un documento de la colección
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongo(client *mongo.Client, collection *mongo.Collection) *Mongo {
	return &Mongo{client: client, collection: collection}
}

func (m *Mongo) Read(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var doc kvDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "read %s", key)
	}
	return doc.Value, true, nil
}

func (m *Mongo) Write(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	doc := kvDocument{Key: key, Value: value, UpdatedAt: time.Now()}
	_, err := m.collection.ReplaceOne(
		ctx,
		bson.M{"_id": key},
		doc,
		options.Replace().SetUpsert(true),
	)
	return errors.Wrapf(err, "write %s", key)
}

func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}
