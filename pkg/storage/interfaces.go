package storage

import (
	"context"
	"io"
)

// StorageService stores photo bytes under an object key.
type StorageService interface {
	Upload(ctx context.Context, key, contentType string, reader io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
