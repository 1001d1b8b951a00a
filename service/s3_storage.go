// file: service/s3_storage.go

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"member-api/logger"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// IObjectStorage is the object-storage contract used by the file service.
type IObjectStorage interface {
	Upload(ctx context.Context, data []byte, originalFilename, contentType string) (string, error)
	Download(ctx context.Context, storagePath string) ([]byte, error)
	Delete(ctx context.Context, storagePath string) error
}

var objectNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// S3Storage stores encrypted blobs in an S3-compatible bucket.
type S3Storage struct {
	client *s3.Client
	bucket string
}

func NewS3Storage(client *s3.Client, bucket string) *S3Storage {
	return &S3Storage{client: client, bucket: bucket}
}

// Upload writes the encrypted payload under a fresh object name and returns
// the storage path.
func (s *S3Storage) Upload(ctx context.Context, data []byte, originalFilename, contentType string) (string, error) {
	objectName := GenerateObjectName(originalFilename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Log.WithError(err).WithField("object", objectName).Error("Failed to upload object")
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	logger.Log.WithField("object", objectName).Info("Uploaded encrypted object")
	return objectName, nil
}

func (s *S3Storage) Download(ctx context.Context, storagePath string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storagePath),
	})
	if err != nil {
		logger.Log.WithError(err).WithField("object", storagePath).Error("Failed to download object")
		return nil, fmt.Errorf("failed to download object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return data, nil
}

func (s *S3Storage) Delete(ctx context.Context, storagePath string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storagePath),
	})
	if err != nil {
		logger.Log.WithError(err).WithField("object", storagePath).Error("Failed to delete object")
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// GenerateObjectName builds a unique storage key of the form
// encrypted/{year}/{month}/{uuid}_{sanitized-filename}.
func GenerateObjectName(originalFilename string) string {
	sanitized := objectNameSanitizer.ReplaceAllString(originalFilename, "_")
	now := time.Now()
	return fmt.Sprintf("encrypted/%d/%02d/%s_%s", now.Year(), int(now.Month()), uuid.New(), sanitized)
}
