package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"summit/config"
	"summit/infras/otel"
	"summit/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// S3 stores public media objects in one bucket of an S3 compatible store.
type S3 interface {
	Upload(ctx context.Context, objectKey, contentType string, body io.Reader) (url string, err error)
	Delete(ctx context.Context, objectKey string) error
	ObjectKeyFromURL(url string) (objectKey string)
}

type s3Impl struct {
	client *s3.Client
	bucket string
	domain string
	otel   otel.Otel
}

func (svc *s3Impl) Upload(ctx context.Context, objectKey, contentType string, body io.Reader) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	buf := bytes.NewBuffer(nil)
	if _, err = buf.ReadFrom(body); err != nil {
		return constant.Empty, fmt.Errorf("failed to read file: %w", err)
	}

	reader := bytes.NewReader(buf.Bytes())

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(objectKey),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return svc.domain + "/" + objectKey, nil
}

func (svc *s3Impl) Delete(ctx context.Context, objectKey string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// ObjectKeyFromURL reverses Upload. URLs outside the public domain yield an empty key.
func (svc *s3Impl) ObjectKeyFromURL(url string) string {
	key, found := strings.CutPrefix(url, svc.domain+"/")
	if !found {
		return constant.Empty
	}

	return key
}

func New(config *config.Config, otel otel.Otel) S3 {
	s3Config := config.External.S3

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Config.AccessKeyID, s3Config.SecretAccessKey, "")),
		awsConfig.WithRegion(s3Config.Region),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s3Config.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(s3Config.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	domain := strings.TrimSuffix(s3Config.PublicDomain, "/")
	if domain == "" {
		domain = strings.TrimSuffix(s3Config.APIEndpoint, "/") + "/" + s3Config.BucketName
	}

	return &s3Impl{
		client: client,
		bucket: s3Config.BucketName,
		domain: domain,
		otel:   otel,
	}
}
