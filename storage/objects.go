// Package storage adapts the attachments bucket behind a narrow interface.
// Objects live under {userID}/{reportID}/{timestamp}-{filename} and resolve
// to public URLs off the configured base.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hoa-portal/api-go/config"
)

type ObjectStore interface {
	// Upload stores one attachment and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	// ListPrefix returns the keys under a prefix in the bucket's listing
	// order (lexicographic by key).
	ListPrefix(ctx context.Context, prefix string) ([]string, error)
	PublicURL(key string) string
	Delete(ctx context.Context, key string) error
}

type s3Store struct {
	client *s3.Client
	cfg    *config.StorageConfig
}

func NewObjectStore(client *s3.Client, cfg *config.StorageConfig) ObjectStore {
	return &s3Store{client: client, cfg: cfg}
}

func (s *s3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.BucketName),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *s3Store) ListPrefix(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.BucketName),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}

func (s *s3Store) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", s.cfg.PublicURL, key)
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.BucketName),
		Key:    aws.String(key),
	})
	return err
}
