// Package storage persists rendered digests in an S3 bucket.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/mats16/daily-aws-news/internal/ports"
)

// API is the slice of the S3 client the store uses.
type API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes digest objects and reads back the user metadata a previous
// render attached to them.
type S3Store struct {
	client API
	bucket string
}

var _ ports.ContentStore = (*S3Store)(nil)

// New wires a service client, typically *s3.Client.
func New(client API, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

// Metadata heads the object at key. A missing object is not an error; it
// reports as nil metadata so first renders of a day work the same as
// re-renders.
func (s *S3Store) Metadata(ctx context.Context, key string) (map[string]string, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("head s3://%s/%s: %w", s.bucket, key, err)
	}
	return out.Metadata, nil
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string, metadata map[string]string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		Metadata:    metadata,
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}
