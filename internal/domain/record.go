package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/Huspam/personal-website/internal/models"
)

// NormalizeFilename keeps the final "/"-delimited segment of a stored path.
func NormalizeFilename(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

// RecordFromDocument extracts a PhotoRecord from a raw document.
// Missing coordinates become NaN so that no tolerance box ever contains them.
func RecordFromDocument(doc models.Document) (models.PhotoRecord, error) {
	path, err := filenameField(doc.Fields["filename"])
	if err != nil {
		return models.PhotoRecord{}, err
	}

	date, err := parseDate(doc.Fields["date"])
	if err != nil {
		return models.PhotoRecord{}, err
	}

	return models.PhotoRecord{
		Filename: NormalizeFilename(path),
		Title:    text(doc.Fields["title"]),
		Date:     date,
		Lat:      coord(doc.Fields["lat"]),
		Lon:      coord(doc.Fields["lon"]),
	}, nil
}

func filenameField(v any) (string, error) {
	switch f := v.(type) {
	case nil:
		return "", ErrMissingFilename
	case string:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrBadFilename, v)
	}
}

func parseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, ErrMissingDate
	case time.Time:
		return d, nil
	case *time.Time:
		if d == nil {
			return time.Time{}, ErrMissingDate
		}
		return *d, nil
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, ErrMissingDate
		}
		t, err := dateparse.ParseIn(s, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrBadDate, s, err)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrBadDate, v)
	}
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func coord(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
