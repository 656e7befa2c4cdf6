package ports

import (
	"context"
	"errors"
)

type ObjectStore interface {
	// List returns the keys under prefix in the store's enumeration order.
	List(ctx context.Context, prefix string) ([]string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Close() error
}

var ErrObjectNotFound = errors.New("object not found")
