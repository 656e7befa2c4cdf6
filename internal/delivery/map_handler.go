package delivery

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Huspam/personal-website/internal/config"
	"github.com/Huspam/personal-website/internal/domain"
	"github.com/Huspam/personal-website/internal/ports"
)

//go:embed templates/map.html
var templatesFS embed.FS

var mapPage = template.Must(template.ParseFS(templatesFS, "templates/map.html"))

type MapHandler struct {
	catalog ports.PhotoCatalog
	view    config.MapConfig
	log     *logger.ZapLogger
}

func NewMapHandler(catalog ports.PhotoCatalog, view config.MapConfig, log *logger.ZapLogger) *MapHandler {
	return &MapHandler{
		catalog: catalog,
		view:    view,
		log:     log,
	}
}

// GET /
func (h *MapHandler) Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := mapPage.Execute(w, h.view); err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "map page render failed",
			Error:   err,
		})
	}
}

// GET /api/markers
func (h *MapHandler) Markers(w http.ResponseWriter, r *http.Request) {
	table, err := h.catalog.Load(r.Context())
	if err != nil {
		http.Error(w, "failed load photos: "+err.Error(), http.StatusInternalServerError)
		return
	}

	markers := domain.BuildMarkers(table)

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "markers fetched",
		Fields: map[string]any{
			"records": table.Len(),
			"markers": len(markers),
		},
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"loaded_at": table.LoadedAt,
		"markers":   markers,
	})
}
