package s3

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/atogato/portfolio-backend/config"
)

// Uploader stores project image bytes in S3 and hands back a durable URL.
// It satisfies the projects service AttachmentStore contract.
type Uploader struct {
	client *awss3.Client
	bucket string
	region string
}

func NewUploader(ctx context.Context, cfg *config.S3Config) (*Uploader, error) {
	awsCfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Uploader{
		client: awss3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

// Upload puts the file under a fresh key and returns its public URL.
// The original filename only contributes its extension.
func (u *Uploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	key := "projects/" + uuid.NewString() + path.Ext(filename)

	_, err := u.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
