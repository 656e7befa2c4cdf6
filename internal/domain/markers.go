package domain

import (
	"html"

	"github.com/Huspam/personal-website/internal/models"
)

// BuildMarkers returns one marker per record that has a usable location,
// keeping the table order. Tooltip and popup are HTML, so the title is
// escaped in both.
func BuildMarkers(table *models.PhotoTable) []models.MapMarker {
	if table == nil {
		return []models.MapMarker{}
	}
	markers := make([]models.MapMarker, 0, len(table.Records))
	for _, rec := range table.Records {
		if !rec.HasLocation() {
			continue
		}
		markers = append(markers, models.MapMarker{
			Lat:     rec.Lat,
			Lon:     rec.Lon,
			Tooltip: html.EscapeString(rec.Title),
			Popup:   html.EscapeString(rec.Title) + "<br>" + rec.DateLabel(),
		})
	}
	return markers
}
