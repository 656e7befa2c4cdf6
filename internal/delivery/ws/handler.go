package ws

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/gorilla/websocket"

	"github.com/Huspam/personal-website/internal/delivery"
	"github.com/Huspam/personal-website/internal/domain"
	"github.com/Huspam/personal-website/internal/metrics"
	"github.com/Huspam/personal-website/internal/models"
	"github.com/Huspam/personal-website/internal/ports"
)

type clickMsg struct {
	Type string  `json:"type"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type outMsg struct {
	Type     string               `json:"type"`
	LoadedAt *time.Time           `json:"loaded_at,omitempty"`
	Markers  []models.MapMarker   `json:"markers,omitempty"`
	Click    *models.ClickEvent   `json:"click,omitempty"`
	Photos   []delivery.PhotoView `json:"photos,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// click frames are well under 100 bytes
const maxFrameBytes = 4 << 10

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSHandler serves one map session per connection: the catalog is loaded
// once on connect and every click is looked up against that table. The
// table is dropped with the connection.
func WSHandler(
	catalog ports.PhotoCatalog,
	locator ports.PhotoLocator,
	log *logger.ZapLogger,
) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Log(logger.LogEntry{
				Level:   "warn",
				Message: "ws upgrade failed",
				Error:   err,
			})
			return
		}
		defer conn.Close()
		conn.SetReadLimit(maxFrameBytes)

		metrics.SessionsActive.Inc()
		defer metrics.SessionsActive.Dec()

		ctx := r.Context()

		table, err := catalog.Load(ctx)
		if err != nil {
			_ = conn.WriteJSON(outMsg{Type: "error", Error: "failed load photos"})
			return
		}

		log.Log(logger.LogEntry{
			Level:   "info",
			Message: "map session started",
			Fields: map[string]any{
				"records":  table.Len(),
				"loadedAt": table.LoadedAt,
				"remote":   r.RemoteAddr,
			},
		})

		if err := conn.WriteJSON(outMsg{
			Type:     "markers",
			LoadedAt: &table.LoadedAt,
			Markers:  domain.BuildMarkers(table),
		}); err != nil {
			return
		}

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				log.Log(logger.LogEntry{
					Level:   "info",
					Message: "map session ended",
					Fields:  map[string]any{"remote": r.RemoteAddr},
				})
				return
			}

			var msg clickMsg
			if err := json.Unmarshal(raw, &msg); err != nil || msg.Type != "click" {
				if werr := conn.WriteJSON(outMsg{Type: "error", Error: "bad message"}); werr != nil {
					return
				}
				continue
			}
			if !finite(msg.Lat) || !finite(msg.Lng) {
				if werr := conn.WriteJSON(outMsg{Type: "error", Error: "bad coordinate"}); werr != nil {
					return
				}
				continue
			}

			click := models.ClickEvent{Lat: msg.Lat, Lon: msg.Lng}
			photos, err := locator.Nearby(ctx, table, click)
			if err != nil {
				log.Log(logger.LogEntry{
					Level:   "error",
					Message: "nearby lookup failed",
					Fields:  map[string]any{"lat": click.Lat, "lng": click.Lon},
					Error:   err,
				})
				if werr := conn.WriteJSON(outMsg{Type: "error", Error: "failed find photos"}); werr != nil {
					return
				}
				continue
			}

			if err := conn.WriteJSON(outMsg{
				Type:   "nearby",
				Click:  &click,
				Photos: delivery.NewPhotoViews(photos),
			}); err != nil {
				return
			}
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
