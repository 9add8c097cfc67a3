package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/postdeck/configs"
)

var ErrUploadDisabled = errors.New("image upload is not configured")

// ObjectUploader stores an object and returns its public URL.
type ObjectUploader interface {
	Enabled() bool
	Upload(ctx context.Context, key string, file []byte, contentType string) (string, error)
}

type R2Service struct {
	config cfg.R2

	once   sync.Once
	client *s3.Client
	err    error
}

func NewR2Service(r2 cfg.R2) *R2Service {
	return &R2Service{config: r2}
}

func (r *R2Service) Enabled() bool {
	return r.config.Enabled()
}

func (r *R2Service) r2Client(ctx context.Context) (*s3.Client, error) {
	r.once.Do(func() {
		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.AccessKey, r.config.SecretKey, "")),
			config.WithRegion("auto"),
		)
		if err != nil {
			slog.Info(err.Error())
			r.err = err
			return
		}

		r.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.AccountID))
		})
	})
	return r.client, r.err
}

// Upload puts file into the bucket under key and returns its public URL.
func (r *R2Service) Upload(ctx context.Context, key string, file []byte, contentType string) (string, error) {
	if !r.Enabled() {
		return "", ErrUploadDisabled
	}

	client, err := r.r2Client(ctx)
	if err != nil {
		return "", err
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return strings.TrimRight(r.config.PublicURL, "/") + "/" + key, nil
}
