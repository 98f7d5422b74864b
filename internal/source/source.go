// Package source fetches the raw export text from a storage backend.
package source

import (
	"context"
	"fmt"
)

// Driver identifies a concrete storage backend.
type Driver string

const (
	DriverFilesystem Driver = "fs"     // local filesystem (default)
	DriverS3         Driver = "s3"     // S3 / MinIO compatible
	DriverMemory     Driver = "memory" // in-memory (tests)
)

// Source reads a whole object by key. Missing objects are reported with an
// error wrapping fs.ErrNotExist.
type Source interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Driver() Driver
}

// Config selects and configures a driver.
type Config struct {
	Driver Driver

	// FSRoot is prepended to relative keys when Driver is fs.
	FSRoot string

	S3Bucket          string
	S3Region          string
	S3Endpoint        string // optional, e.g. MinIO
	S3PathStyle       bool
	S3AccessKeyID     string // optional, falls back to the default chain
	S3SecretAccessKey string
}

// Open builds the Source named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Source, error) {
	switch cfg.Driver {
	case "", DriverFilesystem:
		return NewFilesystem(cfg.FSRoot), nil
	case DriverS3:
		return NewS3(ctx, cfg)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown source driver %q", cfg.Driver)
	}
}
