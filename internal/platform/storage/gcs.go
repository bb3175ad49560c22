package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com"

// GCSUploader はGoogle Cloud Storageへのアップローダーです。
type GCSUploader struct {
	client     *storage.Client
	bucket     string
	publicBase string
}

var _ Uploader = (*GCSUploader)(nil)

// NewGCSUploader はGCSクライアントを生成します。
// GCSCredentialsJSONが空の場合はApplication Default Credentialsを使用します。
func NewGCSUploader(ctx context.Context, cfg Config, opts ...option.ClientOption) (*GCSUploader, error) {
	if cfg.GCSCredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.GCSCredentialsJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}

	base := cfg.PublicBaseURL
	if base == "" {
		base = gcsPublicHost + "/" + cfg.GCSBucket
	}
	return &GCSUploader{client: client, bucket: cfg.GCSBucket, publicBase: base}, nil
}

// Upload はオブジェクトを書き込み、公開URLを返します。
func (u *GCSUploader) Upload(ctx context.Context, fileName, contentType string, body []byte) (string, error) {
	key := objectKey(fileName)

	wc := u.client.Bucket(u.bucket).Object(key).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // 小さいファイルはチャンク分割しない
	if _, err := io.Copy(wc, bytes.NewReader(body)); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", key, err)
	}
	return publicURL(u.publicBase, key), nil
}

// Close はGCSクライアントを閉じます。
func (u *GCSUploader) Close() error {
	return u.client.Close()
}
