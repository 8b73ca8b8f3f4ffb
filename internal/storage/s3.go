package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bookwise-app/booking-api/internal/config"
)

// S3Store keeps avatars in an S3 (or MinIO) bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(cfg *config.Config) (*S3Store, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 upload driver requires S3_BUCKET")
	}

	opts := s3.Options{
		Region:       cfg.S3Region,
		UsePathStyle: cfg.S3PathStyle,
	}
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	return &S3Store{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}, nil
}

func (s *S3Store) Put(
	ctx context.Context,
	key string,
	r io.Reader,
	contentType string,
) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar to s3: %w", err)
	}

	return key, nil
}
