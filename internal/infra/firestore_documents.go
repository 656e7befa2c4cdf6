package infra

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Huspam/personal-website/internal/models"
	"github.com/Huspam/personal-website/internal/ports"
)

type FirestoreDocuments struct {
	client *firestore.Client
}

var _ ports.DocumentStore = (*FirestoreDocuments)(nil)

func NewFirestoreDocuments(ctx context.Context, projectID, database string) (*FirestoreDocuments, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, database)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return &FirestoreDocuments{client: client}, nil
}

func (f *FirestoreDocuments) Stream(
	ctx context.Context,
	collection string,
	fn func(doc models.Document) error,
) error {
	it := f.client.Collection(collection).Documents(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("firestore stream %s: %w", collection, err)
		}
		if err := fn(models.Document{ID: snap.Ref.ID, Fields: snap.Data()}); err != nil {
			return err
		}
	}
}

func (f *FirestoreDocuments) Close() error {
	return f.client.Close()
}
