package infra

import (
	"context"
	"fmt"

	"github.com/Huspam/personal-website/internal/config"
	"github.com/Huspam/personal-website/internal/ports"
)

// OpenDocumentStore connects the document backend selected by cfg.
func OpenDocumentStore(ctx context.Context, cfg config.Config) (ports.DocumentStore, error) {
	switch cfg.DocumentBackend {
	case config.BackendFirestore:
		docs, err := NewFirestoreDocuments(ctx, cfg.ProjectID, cfg.FirestoreDatabase)
		if err != nil {
			return nil, err
		}
		return docs, nil

	case config.BackendPostgres:
		pool, err := NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		docs := NewPostgresDocuments(pool)
		if err := docs.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return docs, nil

	case config.BackendMongo:
		docs, err := NewMongoDocuments(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return docs, nil

	case config.BackendSQLite:
		docs, err := OpenSQLiteDocuments(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return docs, nil

	default:
		return nil, fmt.Errorf("unknown document backend %q", cfg.DocumentBackend)
	}
}

// OpenObjectStore connects the blob backend selected by cfg.
func OpenObjectStore(ctx context.Context, cfg config.Config) (ports.ObjectStore, error) {
	switch cfg.BlobBackend {
	case config.BackendGCS:
		objects, err := NewGCSObjects(ctx, cfg.Bucket)
		if err != nil {
			return nil, err
		}
		return objects, nil
	case config.BackendS3:
		objects, err := NewS3Objects(ctx, cfg.Bucket, cfg.AWSRegion, cfg.S3Endpoint)
		if err != nil {
			return nil, err
		}
		return objects, nil
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.BlobBackend)
	}
}
