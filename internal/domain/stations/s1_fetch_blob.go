package stations

import (
	"context"
	"fmt"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Huspam/personal-website/internal/ports"
)

type S1FetchBlob struct {
	objects ports.ObjectStore
	log     *logger.ZapLogger
}

func NewS1FetchBlob(objects ports.ObjectStore, log *logger.ZapLogger) *S1FetchBlob {
	return &S1FetchBlob{objects: objects, log: log}
}

// Run downloads the blob in full. Nothing is cached between calls.
func (s *S1FetchBlob) Run(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()

	raw, err := s.objects.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("[S1] get %s: %w", key, err)
	}

	s.log.Log(logger.LogEntry{
		Level:   "debug",
		Message: "[S1] blob fetched",
		Fields: map[string]any{
			"key":   key,
			"bytes": len(raw),
			"durMs": time.Since(start).Milliseconds(),
		},
	})
	return raw, nil
}
