package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Huspam/personal-website/internal/metrics"
	"github.com/Huspam/personal-website/internal/models"
	"github.com/Huspam/personal-website/internal/ports"
)

// Tolerance is the half-width, in degrees, of the box searched around a
// click. It is a degree box, not a distance: east-west coverage shrinks
// towards the poles.
const Tolerance = 0.01

// InBox reports whether (lat, lon) lies inside the closed tolerance box
// around the click.
func InBox(lat, lon float64, click models.ClickEvent) bool {
	return lat >= click.Lat-Tolerance && lat <= click.Lat+Tolerance &&
		lon >= click.Lon-Tolerance && lon <= click.Lon+Tolerance
}

// FilterNearby keeps the records inside the tolerance box in table order.
func FilterNearby(records []models.PhotoRecord, click models.ClickEvent) []models.PhotoRecord {
	var out []models.PhotoRecord
	for _, rec := range records {
		if InBox(rec.Lat, rec.Lon, click) {
			out = append(out, rec)
		}
	}
	return out
}

// ResolveBlob returns the first key containing filename. Matching is by
// substring, so "images/2020_paris.jpg" satisfies "paris.jpg" when it is
// listed first.
func ResolveBlob(keys []string, filename string) (string, bool) {
	for _, k := range keys {
		if strings.Contains(k, filename) {
			return k, true
		}
	}
	return "", false
}

// Locator runs the spatial lookup and resolves each match to a blob.
type Locator struct {
	objects ports.ObjectStore
	prefix  string
	log     *logger.ZapLogger
}

var _ ports.PhotoLocator = (*Locator)(nil)

func NewLocator(objects ports.ObjectStore, prefix string, log *logger.ZapLogger) *Locator {
	return &Locator{
		objects: objects,
		prefix:  prefix,
		log:     log,
	}
}

func (l *Locator) Nearby(
	ctx context.Context,
	table *models.PhotoTable,
	click models.ClickEvent,
) ([]models.NearbyPhoto, error) {

	var matches []models.PhotoRecord
	if table != nil {
		matches = FilterNearby(table.Records, click)
	}

	metrics.LookupsTotal.Inc()
	metrics.LookupMatches.Observe(float64(len(matches)))

	if len(matches) == 0 {
		l.log.Log(logger.LogEntry{
			Level:   "info",
			Message: "no photos near click",
			Fields:  map[string]any{"lat": click.Lat, "lng": click.Lon},
		})
		return nil, nil
	}

	// listed once per click, never cached
	keys, err := l.objects.List(ctx, l.prefix)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", l.prefix, err)
	}

	out := make([]models.NearbyPhoto, 0, len(matches))
	for _, rec := range matches {
		key, ok := ResolveBlob(keys, rec.Filename)
		if !ok {
			metrics.BlobMissesTotal.Inc()
			l.log.Log(logger.LogEntry{
				Level:   "debug",
				Message: "no blob for photo",
				Fields:  map[string]any{"filename": rec.Filename},
			})
			continue
		}
		out = append(out, models.NearbyPhoto{Record: rec, BlobKey: key})
	}

	l.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "nearby photos resolved",
		Fields: map[string]any{
			"lat":      click.Lat,
			"lng":      click.Lon,
			"matches":  len(matches),
			"resolved": len(out),
			"listed":   len(keys),
		},
	})

	return out, nil
}
