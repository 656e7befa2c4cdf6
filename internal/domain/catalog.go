package domain

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Huspam/personal-website/internal/metrics"
	"github.com/Huspam/personal-website/internal/models"
	"github.com/Huspam/personal-website/internal/ports"
)

// Catalog is the metadata loader: it materializes the whole photo
// collection, ordered by capture date.
type Catalog struct {
	docs       ports.DocumentStore
	collection string
	log        *logger.ZapLogger
}

var _ ports.PhotoCatalog = (*Catalog)(nil)

func NewCatalog(docs ports.DocumentStore, collection string, log *logger.ZapLogger) *Catalog {
	return &Catalog{
		docs:       docs,
		collection: collection,
		log:        log,
	}
}

func (c *Catalog) Load(ctx context.Context) (*models.PhotoTable, error) {
	start := time.Now()

	var records []models.PhotoRecord
	err := c.docs.Stream(ctx, c.collection, func(doc models.Document) error {
		rec, err := RecordFromDocument(doc)
		if err != nil {
			return fmt.Errorf("document %q: %w", doc.ID, err)
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		metrics.CatalogLoadsTotal.WithLabelValues("error").Inc()
		c.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "catalog load failed",
			Fields:  map[string]any{"collection": c.collection},
			Error:   err,
		})
		return nil, fmt.Errorf("load %s: %w", c.collection, err)
	}

	slices.SortStableFunc(records, func(a, b models.PhotoRecord) int {
		return a.Date.Compare(b.Date)
	})

	dur := time.Since(start)
	metrics.CatalogLoadsTotal.WithLabelValues("ok").Inc()
	metrics.CatalogRecords.Set(float64(len(records)))
	metrics.CatalogLoadDurationMs.Observe(float64(dur.Milliseconds()))

	c.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "catalog loaded",
		Fields: map[string]any{
			"collection": c.collection,
			"records":    len(records),
			"durMs":      dur.Milliseconds(),
		},
	})

	return &models.PhotoTable{Records: records, LoadedAt: time.Now()}, nil
}
