package display

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"phrasebot/phrases"
)

const textContentType = "text/plain; charset=utf-8"

// Bucket keeps each element as an S3 object under a common prefix.
type Bucket struct {
	svc    s3iface.S3API
	bucket string
	prefix string
}

func NewBucket(region, bucket, prefix string) (*Bucket, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3 bucket not configured")
	}
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	return NewBucketWithClient(s3.New(sess), bucket, prefix), nil
}

func NewBucketWithClient(svc s3iface.S3API, bucket, prefix string) *Bucket {
	return &Bucket{svc: svc, bucket: bucket, prefix: prefix}
}

func (b *Bucket) key(id string) string {
	return b.prefix + id
}

func (b *Bucket) Element(ctx context.Context, id string) (phrases.Element, error) {
	_, err := b.svc.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key(id)),
	})
	if isNotFound(err) {
		return nil, phrases.ErrTargetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bucketElement{surface: b, key: b.key(id)}, nil
}

func (b *Bucket) Create(ctx context.Context, id string) (string, error) {
	if err := b.put(ctx, b.key(id), ""); err != nil {
		return "", err
	}
	return id, nil
}

func (b *Bucket) put(ctx context.Context, key, text string) error {
	_, err := b.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(text)),
		ContentType: aws.String(textContentType),
	})
	return err
}

func isNotFound(err error) bool {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false
	}
	switch aerr.Code() {
	case "NotFound", s3.ErrCodeNoSuchKey:
		return true
	}
	return false
}

type bucketElement struct {
	surface *Bucket
	key     string
}

// SetText checks the object is still there before overwriting it. A delete
// landing between the check and the put still recreates the object.
func (e *bucketElement) SetText(ctx context.Context, text string) error {
	if e == nil {
		return phrases.ErrTargetNotFound
	}
	_, err := e.surface.svc.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(e.surface.bucket),
		Key:    aws.String(e.key),
	})
	if isNotFound(err) {
		return phrases.ErrTargetNotFound
	}
	if err != nil {
		return err
	}
	return e.surface.put(ctx, e.key, text)
}
