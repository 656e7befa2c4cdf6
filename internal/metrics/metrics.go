package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CatalogLoadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "photomap_catalog_loads_total",
		Help: "Catalog loads by result",
	}, []string{"result"})
	CatalogRecords = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "photomap_catalog_records",
		Help: "Records in the most recently loaded catalog",
	})
	CatalogLoadDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "photomap_catalog_load_duration_ms",
		Help:    "Catalog load duration in milliseconds",
		Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000},
	})
	LookupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "photomap_lookups_total",
		Help: "Total nearby lookups",
	})
	LookupMatches = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "photomap_lookup_matches",
		Help:    "Records inside the tolerance box per lookup",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
	BlobMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "photomap_blob_misses_total",
		Help: "Matched records skipped because no blob contains their filename",
	})
	RenderTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "photomap_render_total",
		Help: "Image renders by result",
	}, []string{"result"})
	RenderDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "photomap_render_duration_ms",
		Help:    "Fetch, decode and encode duration in milliseconds",
		Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000},
	})
	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "photomap_ws_sessions_active",
		Help: "Open map sessions",
	})
)

func init() {
	prometheus.MustRegister(CatalogLoadsTotal)
	prometheus.MustRegister(CatalogRecords)
	prometheus.MustRegister(CatalogLoadDurationMs)
	prometheus.MustRegister(LookupsTotal)
	prometheus.MustRegister(LookupMatches)
	prometheus.MustRegister(BlobMissesTotal)
	prometheus.MustRegister(RenderTotal)
	prometheus.MustRegister(RenderDurationMs)
	prometheus.MustRegister(SessionsActive)
}

func Handler() http.Handler { return promhttp.Handler() }
