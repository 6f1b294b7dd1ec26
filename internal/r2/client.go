package r2

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrNoSuchKey is returned when the requested object does not exist.
var ErrNoSuchKey = errors.New("object not found")

// Client wraps the S3-compatible R2 client for a single bucket
type Client struct {
	s3     *s3.Client
	bucket string
}

// NewClient creates an R2 client using static credentials
func NewClient(ctx context.Context, endpoint, bucket, accessKeyID, accessKeySecret string) (*Client, error) {
	if accessKeyID == "" || accessKeySecret == "" {
		return nil, fmt.Errorf("no R2 credentials configured")
	}
	if bucket == "" {
		return nil, fmt.Errorf("no R2 bucket configured")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID,
			accessKeySecret,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{
		s3: s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}),
		bucket: bucket,
	}, nil
}

// GetObject downloads an object from the bucket and returns its body
func (c *Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNoSuchKey, c.bucket, key)
		}
		return nil, fmt.Errorf("get object %s/%s: %w", c.bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s/%s: %w", c.bucket, key, err)
	}
	return data, nil
}

// Bucket returns the bucket this client reads from
func (c *Client) Bucket() string {
	return c.bucket
}
