package delivery

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/Huspam/personal-website/internal/models"
)

// PhotoView is a resolved nearby photo with its caption fields.
type PhotoView struct {
	Filename string  `json:"filename"`
	Title    string  `json:"title"`
	Date     string  `json:"date"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Image    string  `json:"image"`
}

func NewPhotoViews(photos []models.NearbyPhoto) []PhotoView {
	views := make([]PhotoView, 0, len(photos))
	for _, p := range photos {
		views = append(views, PhotoView{
			Filename: p.Record.Filename,
			Title:    p.Record.Title,
			Date:     p.Record.DateLabel(),
			Lat:      p.Record.Lat,
			Lon:      p.Record.Lon,
			Image:    ImageURL(p.BlobKey),
		})
	}
	return views
}

// ImageURL is the display endpoint for a blob key.
func ImageURL(key string) string {
	segs := strings.Split(key, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return "/api/images/" + strings.Join(segs, "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
