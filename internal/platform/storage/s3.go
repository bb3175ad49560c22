package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	httpclient "course_backend/internal/platform/http"
)

// S3Uploader はS3互換ストレージ（Cloudflare R2等）へのアップローダーです。
type S3Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

var _ Uploader = (*S3Uploader)(nil)

// NewS3Uploader は静的クレデンシャルとパス形式のアドレッシングでS3クライアントを生成します。
// HTTPクライアントはSDKのBuildableClientのため、AWS_CA_BUNDLE等のTransport設定も適用されます。
func NewS3Uploader(ctx context.Context, cfg Config) (*S3Uploader, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := awshttp.NewBuildableClient().
		WithTimeout(timeout).
		WithDialerOptions(httpclient.DialerOptions()).
		WithTransportOptions(httpclient.TransportOptions(httpclient.ClientOptions{}))

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithHTTPClient(httpClient),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	base := cfg.PublicBaseURL
	if base == "" {
		base = cfg.Endpoint + "/" + cfg.Bucket
	}
	return &S3Uploader{client: client, bucket: cfg.Bucket, publicBase: base}, nil
}

// Upload はファイル名にUUIDを付けたキーでオブジェクトを保存し、公開URLを返します。
func (u *S3Uploader) Upload(ctx context.Context, fileName, contentType string, body []byte) (string, error) {
	key := objectKey(fileName)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		Body:          bytes.NewReader(body),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	slog.Debug("object uploaded", "bucket", u.bucket, "key", key, "size", len(body))
	return publicURL(u.publicBase, key), nil
}

// Close is a no-op; the S3 client holds no resources that need releasing.
func (u *S3Uploader) Close() error { return nil }
