package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Huspam/personal-website/internal/config"
	"github.com/Huspam/personal-website/internal/delivery"
	ws "github.com/Huspam/personal-website/internal/delivery/ws"
	"github.com/Huspam/personal-website/internal/domain"
	"github.com/Huspam/personal-website/internal/domain/stations"
	"github.com/Huspam/personal-website/internal/infra"
	"github.com/Huspam/personal-website/internal/metrics"
)

func main() {

	// LOGGER
	zcore, _ := zap.NewProduction()
	defer zcore.Sync()
	zl := logger.NewZapLogger(zcore.Sugar())

	// ENV
	cfg, err := config.Load()
	if err != nil {
		panic(err.Error())
	}

	ctx := context.Background()

	// STORES
	docs, err := infra.OpenDocumentStore(ctx, cfg)
	if err != nil {
		panic("cannot open document store: " + err.Error())
	}
	defer docs.Close()

	objects, err := infra.OpenObjectStore(ctx, cfg)
	if err != nil {
		panic("cannot open object store: " + err.Error())
	}
	defer objects.Close()

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "stores ready",
		Fields: map[string]any{
			"documents":  cfg.DocumentBackend,
			"collection": cfg.Collection,
			"blobs":      cfg.BlobBackend,
			"bucket":     cfg.Bucket,
			"prefix":     cfg.FolderPrefix,
		},
	})

	// SERVICES
	catalog := domain.NewCatalog(docs, cfg.Collection, zl)
	locator := domain.NewLocator(objects, cfg.FolderPrefix, zl)

	// STATIONS
	s1 := stations.NewS1FetchBlob(objects, zl)
	s2 := stations.NewS2DecodeImage()
	s3 := stations.NewS3EncodeJPEG(0)

	display := domain.NewDisplayService(cfg.FolderPrefix, s1, s2, s3, zl)

	// HANDLERS
	hMap := delivery.NewMapHandler(catalog, cfg.Map, zl)
	hPhoto := delivery.NewPhotoHandler(catalog, locator, display, zl)

	// ROUTER
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	delivery.RegisterRoutes(r, hMap, hPhoto)

	// one connection == one page load
	r.Get("/ws", ws.WSHandler(catalog, locator, zl))

	r.Handle("/metrics", metrics.Handler())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "server started",
			Fields:  map[string]any{"port": cfg.Port},
		})

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Log(logger.LogEntry{
				Level:   "error",
				Message: "server crashed",
				Error:   err,
			})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "shutdown failed",
			Error:   err,
		})
	}

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server stopped",
	})
}
