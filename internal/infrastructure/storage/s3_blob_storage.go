package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"truetickets/internal/infrastructure/database"
	"truetickets/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultAttachmentsBucket = "truetickets-attachments"

// S3BlobStorage stores ticket attachments in S3 (or a compatible
// store via S3_ENDPOINT).
type S3BlobStorage struct {
	client *s3.Client
	bucket string
	region string
}

var _ interfaces.IBlobStorage = (*S3BlobStorage)(nil)

func NewS3BlobStorage() *S3BlobStorage {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		bucket = defaultAttachmentsBucket
	}
	return &S3BlobStorage{client: client, bucket: bucket, region: cfg.Region}
}

func (s *S3BlobStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.publicURL(key), nil
}

func (s *S3BlobStorage) publicURL(key string) string {
	if base := os.Getenv("ATTACHMENTS_URL_BASE"); base != "" {
		return base + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
