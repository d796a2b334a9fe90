package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"meca-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archiver stores JSON documents under a key.
type Archiver interface {
	PutJSON(ctx context.Context, key string, value any) error
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type S3Archiver struct {
	client *s3.Client
	bucket string
}

func NewS3Archiver(cfg S3Config) *S3Archiver {
	client := s3.New(s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	}, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Archiver{client: client, bucket: cfg.Bucket}
}

func (a *S3Archiver) PutJSON(ctx context.Context, key string, value any) error {
	body, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		logger.Error("S3Archiver:PutJSON", "bucket", a.bucket, "key", key, "error", err)
		return err
	}
	return nil
}

// NopArchiver is used when no bucket is configured.
type NopArchiver struct{}

func (NopArchiver) PutJSON(context.Context, string, any) error { return nil }
