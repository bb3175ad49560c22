// Package storage uploads user media to object storage (Cloudflare R2/S3 or Google Cloud Storage).
package storage

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Storage drivers.
const (
	DriverS3  = "s3"
	DriverGCS = "gcs"
)

const defaultTimeout = 30 * time.Second

// Config はオブジェクトストレージの接続設定です。
type Config struct {
	Driver string

	// S3互換（Cloudflare R2、MinIO等）
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	R2AccountID     string

	// Google Cloud Storage
	GCSBucket          string
	GCSCredentialsJSON string

	// PublicBaseURL is prepended to object keys to build the returned URL.
	PublicBaseURL string
	Timeout       time.Duration
}

// LoadConfigFromEnv は環境変数から設定を読み込みます。STORAGE_DRIVERの既定値はs3です。
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Driver:             strings.ToLower(getenv("STORAGE_DRIVER", DriverS3)),
		Endpoint:           os.Getenv("S3_ENDPOINT"),
		Region:             getenv("S3_REGION", "auto"),
		Bucket:             os.Getenv("S3_BUCKET"),
		AccessKeyID:        os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey:    os.Getenv("S3_SECRET_ACCESS_KEY"),
		R2AccountID:        os.Getenv("R2_ACCOUNT_ID"),
		GCSBucket:          os.Getenv("GCS_BUCKET"),
		GCSCredentialsJSON: os.Getenv("GCS_CREDENTIALS_JSON"),
		PublicBaseURL:      os.Getenv("STORAGE_PUBLIC_BASE_URL"),
		Timeout:            defaultTimeout,
	}

	if v := os.Getenv("STORAGE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STORAGE_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}

	if cfg.Endpoint == "" && cfg.R2AccountID != "" {
		cfg.Endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Driver {
	case DriverS3:
		if c.Bucket == "" {
			return errors.New("S3_BUCKET is required")
		}
		if c.Endpoint == "" {
			return errors.New("S3_ENDPOINT or R2_ACCOUNT_ID is required")
		}
	case DriverGCS:
		if c.GCSBucket == "" {
			return errors.New("GCS_BUCKET is required")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Driver)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
