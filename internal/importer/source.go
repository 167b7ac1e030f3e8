package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Source yields the tracking files by name ("leads.json", ...). A file that
// does not exist is reported with an error matching fs.ErrNotExist.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	String() string
}

// DirSource reads tracking files from a local directory.
type DirSource struct {
	Root string
}

func NewDirSource(root string) *DirSource {
	return &DirSource{Root: root}
}

func (s *DirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Root, name))
}

func (s *DirSource) String() string {
	return "dir:" + s.Root
}

// S3Config describes a bucket holding the tracking files. Endpoint is set for
// S3-compatible stores such as MinIO.
type S3Config struct {
	Region    string `env:"REGION"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"`
	Prefix    string `env:"PREFIX"`
}

// s3Getter is the part of *s3.Client used by S3Source.
type s3Getter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads tracking files from <bucket>/<prefix>/<name>.
type S3Source struct {
	client s3Getter
	bucket string
	prefix string
}

func NewS3Source(ctx context.Context, c S3Config) (*S3Source, error) {
	if c.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(c.Region)}
	if c.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3 config error: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Source{client: client, bucket: c.Bucket, prefix: strings.Trim(c.Prefix, "/")}, nil
}

func (s *S3Source) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *S3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("s3://%s/%s: %w", s.bucket, key, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("s3://%s/%s: %w", s.bucket, key, err)
	}
	return out.Body, nil
}

func (s *S3Source) String() string {
	return "s3://" + path.Join(s.bucket, s.prefix)
}
