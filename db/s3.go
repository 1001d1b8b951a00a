// file: db/s3.go

package db

import (
	"context"
	"fmt"
	appconfig "member-api/config"
	"member-api/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectS3 builds an S3 client for the configured object-storage endpoint.
// A custom BaseEndpoint lets the same client talk to MinIO in development.
func ConnectS3(ctx context.Context) (*s3.Client, error) {
	cfg := appconfig.AppConfig.S3

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load S3 configuration")
		return nil, fmt.Errorf("failed to load s3 configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Log.WithField("endpoint", cfg.Endpoint).Info("S3 client initialized")
	return client, nil
}
