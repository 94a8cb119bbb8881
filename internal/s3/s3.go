// Package s3 fetches Parquet objects from S3 and S3-compatible storage.
package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// URIScheme prefixes every S3 object URI.
const URIScheme = "s3://"

// IsURI reports whether the given path names an S3 object.
func IsURI(path string) bool {
	return strings.HasPrefix(path, URIScheme)
}

// ParseURI splits an s3:// URI into bucket and object key.
func ParseURI(uri string) (bucket, key string, err error) {
	if !IsURI(uri) {
		return "", "", fmt.Errorf("invalid S3 URI %q: missing s3:// scheme", uri)
	}
	rest := strings.TrimPrefix(uri, URIScheme)
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: missing bucket", uri)
	}
	if len(parts) < 2 || parts[1] == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: missing object key", uri)
	}
	return parts[0], parts[1], nil
}

// Options selects how the client authenticates and where it connects.
type Options struct {
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	Region          string
	PathStyle       bool
}

// HasStaticCredentials reports whether both halves of the static key pair
// are set.
func (o Options) HasStaticCredentials() bool {
	return o.AccessKeyID != "" && o.SecretAccessKey != ""
}

// LoadConfig resolves AWS configuration for the given options. Static
// credentials take precedence; otherwise the SDK default chain applies
// (environment, shared config, instance roles).
func LoadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error

	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.HasStaticCredentials() {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS config: %w", err)
	}

	// Resolve credentials eagerly; auth prompts and failures happen before
	// any fetch spinner starts.
	if cfg.Credentials != nil {
		if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
			return aws.Config{}, fmt.Errorf("no S3 credentials found: pass --access-key-id and --secret-access-key, configure a storage profile, or set up ambient AWS credentials: %w", err)
		}
	}

	return cfg, nil
}

// Service fetches whole objects from S3.
type Service interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

type service struct {
	client *awss3.Client
}

// NewService creates an S3 fetch service. A custom endpoint switches the
// client to path-style addressing for S3-compatible stores such as MinIO;
// PathStyle forces it independently of the endpoint.
func NewService(cfg aws.Config, opts Options) Service {
	client := awss3.NewFromConfig(cfg, func(o *awss3.Options) {
		if opts.EndpointURL != "" {
			o.BaseEndpoint = aws.String(opts.EndpointURL)
		}
		o.UsePathStyle = opts.PathStyle || opts.EndpointURL != ""
	})
	return &service{client: client}
}

// Fetch downloads the full object named by the URI.
func (s *service) Fetch(ctx context.Context, uri string) ([]byte, error) {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", uri, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", uri, err)
	}
	return data, nil
}
