package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"go.uber.org/zap"

	"github.com/Huspam/personal-website/internal/models"
	"github.com/Huspam/personal-website/internal/ports"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	return logger.NewZapLogger(zap.NewNop().Sugar())
}

type fakeDocs struct {
	docs []models.Document
	err  error
}

func (f *fakeDocs) Stream(ctx context.Context, collection string, fn func(doc models.Document) error) error {
	for _, d := range f.docs {
		if err := fn(d); err != nil {
			return err
		}
	}
	return f.err
}

func (f *fakeDocs) Close() error { return nil }

type fakeObjects struct {
	keys    []string
	blobs   map[string][]byte
	listErr error

	listCalls int
	getCalls  int
	prefixes  []string
}

func (f *fakeObjects) List(ctx context.Context, prefix string) ([]string, error) {
	f.listCalls++
	f.prefixes = append(f.prefixes, prefix)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.keys, nil
}

func (f *fakeObjects) Get(ctx context.Context, key string) ([]byte, error) {
	f.getCalls++
	raw, ok := f.blobs[key]
	if !ok {
		return nil, ports.ErrObjectNotFound
	}
	return raw, nil
}

func (f *fakeObjects) Close() error { return nil }

var errBoom = errors.New("boom")
