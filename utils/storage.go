package utils

import (
	"context"
	"fmt"
	"log"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/princinho/lingeriestore/config"
)

// ObjectAPI is the part of the S3 client used for product media.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// R2Client wraps the S3 client with the bucket and the public domain objects
// are served from.
type R2Client struct {
	S3           ObjectAPI
	Bucket       string
	PublicDomain string
}

func NewCloudClient(ctx context.Context, cfg config.StorageConfig) (*R2Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true // required for R2
	})

	return &R2Client{S3: client, Bucket: cfg.Bucket, PublicDomain: cfg.PublicDomain}, nil
}

// UploadProductImages stores every file under products/<slug>/ and returns
// their public URLs in input order. If one upload fails, the objects already
// written for this batch are deleted.
func (r *R2Client) UploadProductImages(ctx context.Context, productSlug string, files []*multipart.FileHeader) ([]string, error) {
	if productSlug == "" {
		productSlug = "unsorted"
	}

	urls := make([]string, 0, len(files))
	written := make([]string, 0, len(files))

	for _, fh := range files {
		objectName, err := r.putImage(ctx, productSlug, fh)
		if err != nil {
			if delErr := r.DeleteObjects(ctx, written); delErr != nil {
				log.Printf("cleanup after failed upload: %v", delErr)
			}
			return nil, err
		}
		written = append(written, objectName)
		urls = append(urls, r.PublicURL(objectName))
	}

	return urls, nil
}

func (r *R2Client) putImage(ctx context.Context, productSlug string, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".bin"
	}
	objectName := ProductImageObjectName(productSlug, ext, time.Now().UTC())

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	_, err = r.S3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(r.Bucket),
		Key:          aws.String(objectName),
		Body:         f,
		ContentType:  aws.String(contentType(fh, ext)),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", fh.Filename, err)
	}
	return objectName, nil
}

func (r *R2Client) DeleteObjects(ctx context.Context, objectNames []string) error {
	var firstErr error
	for _, obj := range objectNames {
		if obj == "" {
			continue
		}
		_, err := r.S3.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(r.Bucket),
			Key:    aws.String(obj),
		})
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("delete %s: %w", obj, err)
		}
	}
	return firstErr
}

// PublicURL builds the public URL for a stored object from R2_PUBLIC_DOMAIN,
// e.g. "https://files.yourdomain.com" or "https://pub-xxx.r2.dev".
func (r *R2Client) PublicURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", r.PublicDomain, r.Bucket, objectName)
}

func ProductImageObjectName(productSlug, ext string, now time.Time) string {
	return fmt.Sprintf("products/%s/%d-%s%s", productSlug, now.Unix(), uuid.New().String(), ext)
}

func contentType(fh *multipart.FileHeader, ext string) string {
	ct := fh.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		ct = mime.TypeByExtension(ext)
	}
	if ct == "" {
		ct = "application/octet-stream"
	}
	return ct
}
