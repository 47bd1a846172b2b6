package external_services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
)

// S3Storage stores lesson media and course images in an S3-compatible
// bucket (AWS or MinIO via a custom endpoint).
type S3Storage struct {
	bucket    string
	region    string
	endpoint  string
	accessKey string
	secretKey string
	client    *s3.Client
}

func NewS3Storage(ctx context.Context, bucket, region, endpoint, accessKey, secretKey string) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		bucket:    bucket,
		region:    region,
		endpoint:  endpoint,
		accessKey: accessKey,
		secretKey: secretKey,
		client:    client,
	}, nil
}

var _ contract.IFileStorage = (*S3Storage)(nil)

// storageKey derives a collision-free key from the proposed name, grouped
// by upload date.
func storageKey(proposedName string) string {
	d := time.Now()
	base := strings.ReplaceAll(path.Base(proposedName), " ", "_")
	return fmt.Sprintf("uploads/%d/%02d/%s_%s", d.Year(), d.Month(), uuid.New().String()[:8], base)
}

// Upload stores the bytes and returns the object's public URL and key.
func (s *S3Storage) Upload(ctx context.Context, data []byte, proposedName, mimeType string) (*contract.StoredFile, error) {
	key := storageKey(proposedName)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return &contract.StoredFile{URL: s.objectURL(key), Key: key}, nil
}

// Delete removes the object by key.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
