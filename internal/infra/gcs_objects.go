package infra

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/Huspam/personal-website/internal/ports"
)

type GCSObjects struct {
	client *storage.Client
	bucket string
}

var _ ports.ObjectStore = (*GCSObjects)(nil)

func NewGCSObjects(ctx context.Context, bucket string) (*GCSObjects, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	return &GCSObjects{client: client, bucket: bucket}, nil
}

func (g *GCSObjects) List(ctx context.Context, prefix string) ([]string, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{Prefix: prefix})

	var keys []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return keys, nil
		}
		if err != nil {
			return nil, fmt.Errorf("gcs list %s/%s: %w", g.bucket, prefix, err)
		}
		keys = append(keys, attrs.Name)
	}
}

func (g *GCSObjects) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := g.client.Bucket(g.bucket).Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("gcs %s/%s: %w", g.bucket, key, ports.ErrObjectNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("gcs open %s/%s: %w", g.bucket, key, err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s/%s: %w", g.bucket, key, err)
	}
	return raw, nil
}

func (g *GCSObjects) Close() error {
	return g.client.Close()
}
