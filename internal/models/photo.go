package models

import (
	"math"
	"time"
)

// PhotoRecord is one photo of the catalog. Filename is the base name of the
// stored path and is the join key against object-store blob names.
type PhotoRecord struct {
	Filename string    `json:"filename"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Lat      float64   `json:"lat"`
	Lon      float64   `json:"lon"`
}

// HasLocation reports whether both coordinates are finite numbers.
func (p PhotoRecord) HasLocation() bool {
	return !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) &&
		!math.IsNaN(p.Lon) && !math.IsInf(p.Lon, 0)
}

// DateLabel is the calendar date shown in popups and captions.
func (p PhotoRecord) DateLabel() string {
	return p.Date.Format("2006-01-02")
}

// PhotoTable is the catalog of one page load, ordered ascending by Date.
// It is never mutated after the loader returns it.
type PhotoTable struct {
	Records  []PhotoRecord
	LoadedAt time.Time
}

func (t *PhotoTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// ClickEvent is the coordinate reported by the map widget.
type ClickEvent struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}
