package s3

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"workwise-backend/internal/shared/storage/object"
	"workwise-backend/internal/shared/util"
)

// Store keeps uploads in an S3 bucket.
type Store struct {
	client   *s3.Client
	bucket   string
	prefix   string
	kmsKeyID string
}

// New creates an S3-backed object store.
func New(ctx context.Context, region, bucket, prefix, kmsKeyID string) (*Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Store{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		prefix:   strings.Trim(strings.TrimSpace(prefix), "/"),
		kmsKeyID: strings.TrimSpace(kmsKeyID),
	}, nil
}

// Save uploads r under the owner's hashed namespace.
func (s *Store) Save(ctx context.Context, owner string, fileName string, r io.Reader) (object.Object, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return object.Object{}, fmt.Errorf("sanitize file name: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return object.Object{}, err
	}

	key := path.Join(util.PrincipalKey(owner), randomID()+"_"+name)

	sniff := make([]byte, object.SniffLen)
	n, readErr := io.ReadFull(r, sniff)
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return object.Object{}, fmt.Errorf("read sniff: %w", readErr)
	}
	sniff = sniff[:n]
	contentType := object.DetectContentType(sniff)

	size, err := s.SaveWithKey(ctx, key, contentType, io.MultiReader(bytes.NewReader(sniff), r))
	if err != nil {
		return object.Object{}, err
	}
	return object.Object{Key: key, SizeBytes: size, ContentType: contentType}, nil
}

// Open downloads a stored object for reading.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	objectKey := applyPrefix(s.prefix, key)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	return out.Body, nil
}

// SaveWithKey uploads r to key with server-side encryption.
func (s *Store) SaveWithKey(ctx context.Context, key string, contentType string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := applyPrefix(s.prefix, key)
	counter := &countingReader{r: r}
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        counter,
		ContentType: aws.String(contentType),
	}
	if s.kmsKeyID != "" {
		input.ServerSideEncryption = s3types.ServerSideEncryptionAwsKms
		input.SSEKMSKeyId = aws.String(s.kmsKeyID)
	} else {
		input.ServerSideEncryption = s3types.ServerSideEncryptionAes256
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return 0, fmt.Errorf("s3 put object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	return counter.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func applyPrefix(prefix, key string) string {
	cleanPrefix := strings.Trim(prefix, "/")
	cleanKey := strings.TrimLeft(key, "/")
	if cleanPrefix == "" {
		return cleanKey
	}
	if cleanKey == "" {
		return cleanPrefix
	}
	return cleanPrefix + "/" + cleanKey
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

var _ object.ObjectStore = (*Store)(nil)
