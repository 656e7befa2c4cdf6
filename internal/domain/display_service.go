package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Huspam/personal-website/internal/domain/stations"
	"github.com/Huspam/personal-website/internal/metrics"
	"github.com/Huspam/personal-website/internal/models"
	"github.com/Huspam/personal-website/internal/ports"
)

// DisplayService is the display trigger: fetch -> decode+orient -> encode.
type DisplayService struct {
	prefix string

	s1 *stations.S1FetchBlob
	s2 *stations.S2DecodeImage
	s3 *stations.S3EncodeJPEG

	log *logger.ZapLogger
}

var _ ports.PhotoDisplay = (*DisplayService)(nil)

func NewDisplayService(
	prefix string,
	s1 *stations.S1FetchBlob,
	s2 *stations.S2DecodeImage,
	s3 *stations.S3EncodeJPEG,
	log *logger.ZapLogger,
) *DisplayService {
	return &DisplayService{
		prefix: prefix,
		s1:     s1,
		s2:     s2,
		s3:     s3,
		log:    log,
	}
}

// InFolder reports whether key names a blob under the photo folder.
func InFolder(key, prefix string) bool {
	if key == "" || !strings.HasPrefix(key, prefix) {
		return false
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return false
		}
	}
	return true
}

func (d *DisplayService) Render(ctx context.Context, key string) (*models.RenderedImage, error) {
	if !InFolder(key, d.prefix) {
		return nil, fmt.Errorf("%w: %q", ErrBlobOutsidePrefix, key)
	}

	start := time.Now()
	img, err := d.render(ctx, key)
	metrics.RenderDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RenderTotal.WithLabelValues("error").Inc()
		d.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "photo render failed",
			Fields:  map[string]any{"key": key},
			Error:   err,
		})
		return nil, err
	}

	metrics.RenderTotal.WithLabelValues("ok").Inc()
	return img, nil
}

func (d *DisplayService) render(ctx context.Context, key string) (*models.RenderedImage, error) {
	raw, err := d.s1.Run(ctx, key)
	if err != nil {
		return nil, err
	}

	img, err := d.s2.Run(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	data, err := d.s3.Run(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	b := img.Bounds()
	return &models.RenderedImage{
		Key:         key,
		ContentType: "image/jpeg",
		Data:        data,
		Width:       b.Dx(),
		Height:      b.Dy(),
	}, nil
}
