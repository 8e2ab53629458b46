package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vmini/internal/errors"
)

// S3API is the subset of *s3.Client the publisher uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads snapshots to a bucket.
type S3Publisher struct {
	client S3API
	target Target
}

// NewS3Publisher creates a publisher for an s3:// target.
func NewS3Publisher(client S3API, target Target) *S3Publisher {
	return &S3Publisher{client: client, target: target}
}

// Publish implements Publisher.
func (p *S3Publisher) Publish(ctx context.Context, name string, html []byte) error {
	key := p.target.Key(name)
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.target.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		return errors.New("E030").
			WithDetail(fmt.Sprintf("PutObject s3://%s/%s", p.target.Bucket, key)).
			Wrap(err)
	}
	return nil
}

// S3Config configures NewS3Client.
type S3Config struct {
	Region string

	// Endpoint overrides the service endpoint (e.g. a MinIO URL).
	Endpoint string

	// PathStyle forces path-style addressing.
	PathStyle bool
}

// NewS3Client builds an S3 client that reads static credentials from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
		UsePathStyle: cfg.PathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("snapshot: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}

// Open returns the publisher for target. S3 targets use cfg to build a
// client.
func Open(target Target, cfg S3Config) Publisher {
	if target.IsS3() {
		return NewS3Publisher(NewS3Client(cfg), target)
	}
	return FilePublisher{Dir: target.Dir}
}
