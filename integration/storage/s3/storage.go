package s3

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client is the slice of the S3 API the storage uses. The SDK client
// satisfies it; tests substitute a mock.
type Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3aws.DeleteObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.DeleteObjectOutput, error)
}

// Storage stores objects in a single S3 bucket.
type Storage struct {
	client         Client
	bucket         string
	region         string
	endpoint       string
	baseURL        string
	forcePathStyle bool
	uploadTimeout  time.Duration
}

// Option configures optional Storage behavior.
type Option func(*options)

type options struct {
	client Client
}

// WithClient sets a pre-configured client. Used by tests.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// New creates an S3 storage from the config. When no client is injected
// it builds one from the AWS default chain, with static credentials and
// a custom endpoint when configured.
func New(ctx context.Context, cfg Config, opts ...Option) (*Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		awsOpts := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOpts = append(awsOpts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOpts...)
		if err != nil {
			return nil, fmt.Errorf("s3: load aws config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(opt *s3aws.Options) {
			if cfg.Endpoint != "" {
				opt.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			opt.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &Storage{
		client:         client,
		bucket:         cfg.Bucket,
		region:         cfg.Region,
		endpoint:       cfg.Endpoint,
		baseURL:        cfg.BaseURL,
		forcePathStyle: cfg.ForcePathStyle,
		uploadTimeout:  cfg.UploadTimeout,
	}, nil
}

// validKey rejects empty keys and path traversal in object keys.
func validKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return key, nil
}

// Save streams body into the bucket under key with the given content
// type.
func (s *Storage) Save(ctx context.Context, key string, body io.Reader, contentType string) error {
	key, err := validKey(key)
	if err != nil {
		return err
	}

	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3aws.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return classifyError(err, "save object")
}

// Delete removes an object. A missing key is ErrObjectNotFound so
// callers get the same outcome as a stale metadata row.
func (s *Storage) Delete(ctx context.Context, key string) error {
	key, err := validKey(key)
	if err != nil {
		return err
	}

	_, err = s.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classifyError(err, "check object")
	}

	_, err = s.client.DeleteObject(ctx, &s3aws.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return classifyError(err, "delete object")
}

// Exists reports whether the key is present in the bucket.
func (s *Storage) Exists(ctx context.Context, key string) bool {
	key, err := validKey(key)
	if err != nil {
		return false
	}

	_, err = s.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

// URL returns the public address for a stored key. A configured BaseURL
// (CDN) wins; a custom endpoint uses path or virtual-hosted style per
// ForcePathStyle; otherwise the standard AWS layout applies.
func (s *Storage) URL(key string) string {
	key = strings.TrimPrefix(key, "/")

	if s.baseURL != "" {
		return strings.TrimSuffix(s.baseURL, "/") + "/" + key
	}

	if s.endpoint != "" {
		endpoint := strings.TrimSuffix(s.endpoint, "/")
		protocol := "https://"
		if after, ok := strings.CutPrefix(endpoint, "http://"); ok {
			protocol = "http://"
			endpoint = after
		} else if after, ok := strings.CutPrefix(endpoint, "https://"); ok {
			endpoint = after
		}

		if s.forcePathStyle {
			return fmt.Sprintf("%s%s/%s/%s", protocol, endpoint, s.bucket, key)
		}
		return fmt.Sprintf("%s%s.%s/%s", protocol, s.bucket, endpoint, key)
	}

	if s.forcePathStyle {
		return fmt.Sprintf("https://s3.%s.amazonaws.com/%s/%s", s.region, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
