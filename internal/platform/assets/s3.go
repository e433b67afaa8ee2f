// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package assets

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/taibuivan/inkpress/internal/platform/config"
)

/*
S3Uploader stores assets in an S3-compatible bucket (AWS S3 or MinIO).

Uploaded objects are public-read; the returned URL is built from the
configured asset base URL so a CDN can front the bucket transparently.
*/
type S3Uploader struct {
	client       *s3.Client
	bucket       string
	assetBaseURL string
}

/*
NewS3Uploader builds an S3Uploader from application configuration.

Parameters:
  - ctx: Context for AWS configuration loading
  - cfg: Application configuration (bucket, region, endpoint, credentials)

Returns:
  - *S3Uploader: The configured uploader
  - error: Configuration loading failure
*/
func NewS3Uploader(ctx context.Context, cfg *appconfig.Config) (*S3Uploader, error) {

	// 1. Load AWS configuration with static credentials
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to load AWS config: %w", err)
	}

	// 2. Build the S3 client, honoring a custom endpoint (MinIO)
	client := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		if cfg.S3Endpoint != "" {
			options.BaseEndpoint = aws.String(cfg.S3Endpoint)
			options.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:       client,
		bucket:       cfg.S3Bucket,
		assetBaseURL: strings.TrimRight(cfg.AssetBaseURL, "/"),
	}, nil
}

/*
Upload stores the given bytes under a generated key and returns the public URL.

Parameters:
  - ctx: Request context
  - data: File contents
  - filename: Original filename (used for the extension and content type)
  - folder: Logical folder prefix ("stories", "blogs", "interviews")
*/
func (uploader *S3Uploader) Upload(ctx context.Context, data []byte, filename string, folder string) (string, error) {

	// 1. Build a collision-free object key
	key := ObjectKey(folder, filename)

	// 2. Put the object
	_, err := uploader.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(uploader.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(ContentTypeFor(filename)),
	})
	if err != nil {
		return "", fmt.Errorf("assets: failed to upload %q: %w", key, err)
	}

	// 3. Build the public URL
	return uploader.assetBaseURL + "/" + key, nil
}
