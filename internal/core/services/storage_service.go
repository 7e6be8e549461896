package services

import (
	"context"
	"fmt"
	"time"

	appconfig "github.com/jinlee1703/gifthub-was-cicd/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// StorageService composes voucher image URLs and issues presigned upload
// URLs against the S3 bucket. The ledger itself never touches storage;
// only voucher registration does.
type StorageService struct {
	cfg appconfig.S3Config
}

// NewStorageService creates a new storage service
func NewStorageService(cfg appconfig.S3Config) *StorageService {
	return &StorageService{cfg: cfg}
}

// BucketAddress returns the public base URL for objects under dir
func (s *StorageService) BucketAddress(dir string) string {
	if s.cfg.BaseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s/", s.cfg.BaseEndpoint, s.cfg.Bucket, dir)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s/", s.cfg.Bucket, s.cfg.Region, dir)
}

// PresignedPutURL returns a presigned PUT URL and the object key the client
// must upload to. Keys are date-partitioned with a random suffix.
func (s *StorageService) PresignedPutURL(ctx context.Context, dir string) (url, key string, err error) {
	presignClient, err := s.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	key = fmt.Sprintf("%s/%d/%02d/%v", dir, now.Year(), now.Month(), uuid.New())

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return req.URL, key, nil
}

func (s *StorageService) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}
