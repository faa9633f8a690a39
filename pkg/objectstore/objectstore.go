// Package objectstore archives rendered QR images in an S3-compatible bucket
// (AWS S3 or MinIO). Archival is best-effort: the inventory core never depends
// on it, and a nil *Store disables it entirely.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ghuser/stitchstock/pkg/config"
)

// Store is a single-bucket S3 client. Keys map to object keys directly.
type Store struct {
	client *s3.Client
	bucket string
}

// New builds a Store from application config. Returns (nil, nil) when no
// bucket is configured, which callers treat as "archival disabled".
// Static credentials are read from AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY
// when set (the usual MinIO arrangement); otherwise the default chain applies.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg.QRArchiveBucket == "" {
		return nil, nil
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.QRArchiveRegion),
	}
	if key, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"); key != "" && secret != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, os.Getenv("AWS_SESSION_TOKEN")),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("objectstore: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.QRArchiveEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.QRArchiveEndpoint)
		}
		o.UsePathStyle = cfg.QRArchivePathStyle
	})

	return &Store{client: client, bucket: cfg.QRArchiveBucket}, nil
}

// Put uploads an object, overwriting any existing one under the same key.
func (s *Store) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("objectstore: put %s: %w", key, err)
	}
	return nil
}

// Get downloads an object's content.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("objectstore: get %s: %w", key, err)
	}
	defer out.Body.Close() //nolint:errcheck
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("objectstore: read %s: %w", key, err)
	}
	return data, nil
}
