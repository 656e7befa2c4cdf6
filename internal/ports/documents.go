package ports

import (
	"context"

	"github.com/Huspam/personal-website/internal/models"
)

// DocumentStore streams every document of a collection, unfiltered.
// Iteration stops at the first error returned by fn.
type DocumentStore interface {
	Stream(ctx context.Context, collection string, fn func(doc models.Document) error) error
	Close() error
}
