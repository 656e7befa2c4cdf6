package infra

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Huspam/personal-website/internal/models"
	"github.com/Huspam/personal-website/internal/ports"
)

type MongoDocuments struct {
	client   *mongo.Client
	database string
}

var _ ports.DocumentStore = (*MongoDocuments)(nil)

func NewMongoDocuments(ctx context.Context, uri, database string) (*MongoDocuments, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctxPing, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}
	return &MongoDocuments{client: client, database: database}, nil
}

func (m *MongoDocuments) Stream(
	ctx context.Context,
	collection string,
	fn func(doc models.Document) error,
) error {
	cur, err := m.client.Database(m.database).Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("mongo find %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return fmt.Errorf("mongo decode: %w", err)
		}
		doc := models.Document{
			ID:     fmt.Sprint(plainValue(raw["_id"])),
			Fields: make(map[string]any, len(raw)),
		}
		for k, v := range raw {
			doc.Fields[k] = plainValue(v)
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	return cur.Err()
}

// plainValue converts BSON-specific scalars to the Go types the loader
// understands.
func plainValue(v any) any {
	switch x := v.(type) {
	case bson.DateTime:
		return x.Time().UTC()
	case bson.ObjectID:
		return x.Hex()
	default:
		return v
	}
}

func (m *MongoDocuments) Close() error {
	return m.client.Disconnect(context.Background())
}
