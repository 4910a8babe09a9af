package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	apperrors "github.com/spounge-ai/sealbox/internal/errors"
)

// S3Store keeps sealed blobs in an S3 bucket, keyed by path. It serves hosts
// that provision key material without durable local disk.
type S3Store struct {
	client *s3.Client
	bucket string
	logger *slog.Logger
}

// NewS3Store creates an S3Store for bucket.
func NewS3Store(cfg aws.Config, bucket string, logger *slog.Logger) *S3Store {
	return &S3Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		logger: logger,
	}
}

// Read returns the object at path. A missing key maps to the notFound
// storage error kind, anything else to ioError.
func (s *S3Store) Read(ctx context.Context, path string) ([]byte, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &path,
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, &apperrors.StorageError{Kind: apperrors.StorageNotFound, Path: path, Err: err}
		}
		return nil, &apperrors.StorageError{Kind: apperrors.StorageIO, Path: path, Err: err}
	}
	defer func() {
		if err := output.Body.Close(); err != nil {
			s.logger.Error("failed to close S3 object body", "error", err)
		}
	}()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, &apperrors.StorageError{Kind: apperrors.StorageIO, Path: path, Err: err}
	}
	return data, nil
}

// Write replaces the object at path with data.
func (s *S3Store) Write(ctx context.Context, path string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &path,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return &apperrors.StorageError{Kind: apperrors.StorageIO, Path: path, Err: err}
	}
	return nil
}

// EnsureDir is a no-op: S3 keys need no parent to exist.
func (s *S3Store) EnsureDir(ctx context.Context, path string) error {
	return nil
}
