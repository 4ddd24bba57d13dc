package publish

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of s3 client used for publishing.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads objects to s3 bucket.
type S3Publisher struct {
	api    PutObjectAPI
	bucket string
	prefix string
}

var _ Publisher = &S3Publisher{}

// NewS3Publisher creates S3Publisher. Object keys are prefixed with prefix.
func NewS3Publisher(api PutObjectAPI, bucket string, prefix string) (*S3Publisher, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name cannot be empty")
	}

	return &S3Publisher{
		api:    api,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Publish uploads object.
func (p *S3Publisher) Publish(ctx context.Context, obj Object) error {
	key := p.Key(obj.Name)
	_, err := p.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(obj.Body),
		ContentLength: aws.Int64(int64(len(obj.Body))),
		ContentType:   aws.String(obj.ContentType),
		CacheControl:  aws.String(obj.CacheControl),
	})
	if err != nil {
		return fmt.Errorf("putting s3://%s/%s: %w", p.bucket, key, err)
	}

	return nil
}

// Key returns object key for given name.
func (p *S3Publisher) Key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

// NewS3Client creates s3 client from the default aws config chain.
// Empty region leaves region resolution to the environment.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return s3.NewFromConfig(cfg), nil
}
