package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"time"
)

var (
	ErrNotFound   = errors.New("object not found")
	ErrInvalidKey = errors.New("invalid object key")
	ErrExists     = errors.New("object already exists")
)

// Storage keeps uploaded images. Keys are slash-separated paths relative to the
// uploads root, for example "2026/10/16/001_cs1l3v0r0k5g.jpg".
type Storage interface {
	Save(ctx context.Context, key string, file io.Reader, size int64, contentType string) error
	Rename(ctx context.Context, oldKey, newKey string) error
	Remove(ctx context.Context, key string) error
	Size(ctx context.Context, key string) (int64, error)
	URL(key string) string
}

// DatedKey places name under a YYYY/MM/DD folder for the given time.
func DatedKey(now time.Time, name string) string {
	return path.Join(now.Format("2006/01/02"), name)
}
