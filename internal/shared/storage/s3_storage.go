package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const presignExpiry = 15 * time.Minute

type S3Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// Upload is a presigned PUT target plus the URL the object is readable at
// once uploaded.
type Upload struct {
	UploadURL string
	PublicURL string
	Key       string
	ExpiresAt time.Time
}

//go:generate mockgen -source=s3_storage.go -destination=mock/s3_storage_mock.go -package=mock
type Presigner interface {
	PresignUpload(ctx context.Context, prefix, filename, contentType string) (Upload, error)
}

type s3Storage struct {
	cfg     S3Config
	presign *s3.PresignClient
	logger  *zap.Logger
}

func NewS3Storage(ctx context.Context, cfg S3Config, logger ...*zap.Logger) (Presigner, error) {
	l := zap.L().Named("storage.s3")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.s3")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &s3Storage{
		cfg:     cfg,
		presign: s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		logger:  l,
	}, nil
}

// ObjectKey builds <prefix>/<uuid>_<base name of filename>.
func ObjectKey(prefix, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "file"
	}
	return fmt.Sprintf("%s/%s_%s", strings.Trim(prefix, "/"), uuid.NewString(), name)
}

func (s *s3Storage) PresignUpload(ctx context.Context, prefix, filename, contentType string) (Upload, error) {
	key := ObjectKey(prefix, filename)

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return Upload{}, fmt.Errorf("presign put %s: %w", key, err)
	}

	s.logger.Debug("presigned upload", zap.String("key", key))
	return Upload{
		UploadURL: req.URL,
		PublicURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key),
		Key:       key,
		ExpiresAt: time.Now().Add(presignExpiry),
	}, nil
}
