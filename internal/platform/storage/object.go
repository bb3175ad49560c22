package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, fileName, contentType string, body []byte) (string, error)
	Close() error
}

// New returns the uploader selected by cfg.Driver.
func New(ctx context.Context, cfg Config) (Uploader, error) {
	switch cfg.Driver {
	case DriverS3:
		return NewS3Uploader(ctx, cfg)
	case DriverGCS:
		return NewGCSUploader(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// objectKey prefixes the base name of fileName with a random UUID so uploads never overwrite each other.
func objectKey(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	if base == "." || base == "/" {
		base = "file"
	}
	return uuid.NewString() + "-" + base
}

// publicURL joins base and key. An empty base yields the bare key.
func publicURL(base, key string) string {
	if base == "" {
		return key
	}
	return strings.TrimRight(base, "/") + "/" + key
}
