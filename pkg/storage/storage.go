// Package storage uploads venue photos to an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	// VenuesStoragePath prefixes every uploaded photo key.
	VenuesStoragePath = "venues"

	minURLParts = 2
)

var (
	ErrInvalidFileURL     = errors.New("storage: invalid file URL")
	ErrFailedToUploadFile = errors.New("storage: failed to upload file")
	ErrFailedToDeleteFile = errors.New("storage: failed to delete file")
)

type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	Region          string
	BucketName      string
}

type Client struct {
	s3Client    *s3.Client
	bucketName  string
	endpointURL string
}

func NewClient(cfg Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.EndpointURL)
		o.UsePathStyle = true
	})

	return &Client{
		s3Client:    client,
		bucketName:  cfg.BucketName,
		endpointURL: cfg.EndpointURL,
	}, nil
}

// UploadFile stores the file under a generated key and returns its public URL.
func (c *Client) UploadFile(ctx context.Context, file multipart.File, filename, contentType string) (string, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s/%s%s", VenuesStoragePath, uuid.New().String(), ext)

	if _, err := file.Seek(0, 0); err != nil {
		return "", fmt.Errorf("storage: failed to reset file pointer: %w", err)
	}

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToUploadFile, err)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpointURL, "/"), c.bucketName, key), nil
}

// DeleteFile removes a previously uploaded file given its public URL.
func (c *Client) DeleteFile(ctx context.Context, fileURL string) error {
	parts := strings.SplitN(fileURL, "/"+c.bucketName+"/", minURLParts)
	if len(parts) != minURLParts || parts[1] == "" {
		return ErrInvalidFileURL
	}

	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(parts[1]),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteFile, err)
	}

	return nil
}
