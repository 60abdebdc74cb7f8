package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/config"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gosimple/slug"
)

// UploadService pushes demo media to object storage and returns a shareable
// folder link. Orthogonal to scheduling; the link ends up on the demo
// request's media_link field.
type UploadService interface {
	UploadMedia(ctx context.Context, folder string, files []*multipart.FileHeader) (string, *errors.AppError)
}

type uploadService struct {
	client *s3.Client
	bucket string
	base   string
}

func NewUploadService(cfg config.S3Config) UploadService {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &uploadService{
		client: client,
		bucket: cfg.Bucket,
		base:   strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

func (s *uploadService) UploadMedia(ctx context.Context, folder string, files []*multipart.FileHeader) (string, *errors.AppError) {
	if len(files) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "no files to upload")
	}

	// nanoid suffix keeps repeat uploads for the same client from colliding
	prefix := fmt.Sprintf("%s-%s", slug.Make(folder), utils.GenerateID())
	logger.Info("UploadService:UploadMedia:Start", "folder", prefix, "files", len(files))

	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return "", errors.NewAppError(errors.ErrInvalidInput, "failed to open uploaded file "+fh.Filename, err)
		}

		key := path.Join(prefix, fh.Filename)
		_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(s.bucket),
			Key:           aws.String(key),
			Body:          src,
			ContentLength: aws.Int64(fh.Size),
			ContentType:   aws.String(fh.Header.Get("Content-Type")),
		})
		closeErr := src.Close()
		if err != nil {
			logger.Error("UploadService:UploadMedia:PutObject:Error", "error", err, "key", key)
			return "", errors.NewAppError(errors.ErrInternalServer, "failed to upload "+fh.Filename, err)
		}
		if closeErr != nil && closeErr != io.EOF {
			logger.Warn("UploadService:UploadMedia:Close:Error", "error", closeErr, "key", key)
		}
	}

	link := fmt.Sprintf("%s/%s", s.base, prefix)
	logger.Info("UploadService:UploadMedia:Success", "link", link)
	return link, nil
}
