package delivery

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/Huspam/personal-website/internal/domain"
	"github.com/Huspam/personal-website/internal/models"
	"github.com/Huspam/personal-website/internal/ports"
)

type PhotoHandler struct {
	catalog ports.PhotoCatalog
	locator ports.PhotoLocator
	display ports.PhotoDisplay
	log     *logger.ZapLogger
}

func NewPhotoHandler(
	catalog ports.PhotoCatalog,
	locator ports.PhotoLocator,
	display ports.PhotoDisplay,
	log *logger.ZapLogger,
) *PhotoHandler {
	return &PhotoHandler{
		catalog: catalog,
		locator: locator,
		display: display,
		log:     log,
	}
}

// ParseClick reads a clicked coordinate from lat and lng (or lon).
func ParseClick(q url.Values) (models.ClickEvent, error) {
	lat, err := parseCoord(q.Get("lat"))
	if err != nil {
		return models.ClickEvent{}, fmt.Errorf("lat: %w", err)
	}
	rawLon := q.Get("lng")
	if rawLon == "" {
		rawLon = q.Get("lon")
	}
	lon, err := parseCoord(rawLon)
	if err != nil {
		return models.ClickEvent{}, fmt.Errorf("lng: %w", err)
	}
	return models.ClickEvent{Lat: lat, Lon: lon}, nil
}

func parseCoord(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("missing")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not finite")
	}
	return v, nil
}

// GET /api/nearby?lat=..&lng=..
func (h *PhotoHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	click, err := ParseClick(r.URL.Query())
	if err != nil {
		http.Error(w, "invalid click: "+err.Error(), http.StatusBadRequest)
		return
	}

	table, err := h.catalog.Load(r.Context())
	if err != nil {
		http.Error(w, "failed load photos: "+err.Error(), http.StatusInternalServerError)
		return
	}

	photos, err := h.locator.Nearby(r.Context(), table, click)
	if err != nil {
		http.Error(w, "failed find photos: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"click":  click,
		"photos": NewPhotoViews(photos),
	})
}

// GET /api/images/{key}
func (h *PhotoHandler) Image(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(key); err == nil {
			key = unescaped
		}
	}

	img, err := h.display.Render(r.Context(), key)
	switch {
	case errors.Is(err, domain.ErrBlobOutsidePrefix):
		http.Error(w, "invalid image key", http.StatusBadRequest)
		return
	case errors.Is(err, ports.ErrObjectNotFound):
		http.Error(w, "image not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "failed render image: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("X-Image-Width", strconv.Itoa(img.Width))
	w.Header().Set("X-Image-Height", strconv.Itoa(img.Height))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(img.Data)
}
