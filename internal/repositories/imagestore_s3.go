package repositories

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/Chatrawit/Meeting2/internal/logger"
)

// S3Options configures the S3 (or MinIO) image mirror.
type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string // empty for AWS, set for MinIO and other compatible stores
	AccessKey string
	SecretKey string
	Prefix    string
}

// S3API is the subset of the S3 client used by S3ImageStore.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3ImageStore mirrors stored pictures into an S3 bucket.
type S3ImageStore struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Client builds an S3 client with static credentials.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewS3ImageStore(client S3API, bucket, prefix string) *S3ImageStore {
	return &S3ImageStore{client: client, bucket: bucket, prefix: prefix}
}

// Put uploads data under prefix/name.
func (s *S3ImageStore) Put(ctx context.Context, name string, data []byte) error {
	key := s.key(name)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		input.ContentType = aws.String(ct)
	}

	_, err := s.client.PutObject(ctx, input)

	logger.Log.Debugw("image store",
		"store", "s3",
		"op", "put",
		"bucket", s.bucket,
		"key", key,
		"size", len(data),
		"error", err,
	)

	return err
}

// Get downloads prefix/name.
func (s *S3ImageStore) Get(ctx context.Context, name string) ([]byte, error) {
	key := s.key(name)

	var data []byte
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		data, err = io.ReadAll(out.Body)
		out.Body.Close()
	}

	logger.Log.Debugw("image store",
		"store", "s3",
		"op", "get",
		"bucket", s.bucket,
		"key", key,
		"size", len(data),
		"error", err,
	)

	if isS3NotFound(err) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *S3ImageStore) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound"
}
