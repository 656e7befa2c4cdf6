package delivery

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hMap *MapHandler, hPhoto *PhotoHandler) {

	// page
	r.Get("/", hMap.Page)

	// catalog + lookup
	r.Get("/api/markers", hMap.Markers)
	r.Get("/api/nearby", hPhoto.Nearby)

	// display
	r.Get("/api/images/*", hPhoto.Image)
}
