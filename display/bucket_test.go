package display

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phrasebot/phrases"
)

type fakeS3 struct {
	s3iface.S3API
	objects      map[string]string
	contentTypes map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]string{}, contentTypes: map[string]string{}}
}

func (f *fakeS3) HeadObjectWithContext(_ aws.Context, input *s3.HeadObjectInput, _ ...request.Option) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.StringValue(input.Key)]; !ok {
		return nil, awserr.New("NotFound", "Not Found", nil)
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, input *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	key := aws.StringValue(input.Key)
	f.objects[key] = string(body)
	f.contentTypes[key] = aws.StringValue(input.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func TestBucketElement(t *testing.T) {
	ctx := context.Background()
	svc := newFakeS3()
	bucket := NewBucketWithClient(svc, "footers", "site/")

	_, err := bucket.Element(ctx, "footermessage")
	assert.ErrorIs(t, err, phrases.ErrTargetNotFound)

	_, err = bucket.Create(ctx, "footermessage")
	require.NoError(t, err)
	assert.Equal(t, "", svc.objects["site/footermessage"])

	el, err := bucket.Element(ctx, "footermessage")
	require.NoError(t, err)
	require.NoError(t, el.SetText(ctx, "Let there be songs to fill the air."))
	assert.Equal(t, "Let there be songs to fill the air.", svc.objects["site/footermessage"])
	assert.Equal(t, textContentType, svc.contentTypes["site/footermessage"])
}

func TestIsNotFound(t *testing.T) {
	var tests = []struct {
		err  error
		want bool
	}{
		{nil, false},
		{awserr.New("NotFound", "", nil), true},
		{awserr.New(s3.ErrCodeNoSuchKey, "", nil), true},
		{awserr.New("AccessDenied", "", nil), false},
		{io.EOF, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isNotFound(tt.err), "%v", tt.err)
	}
}

func TestNewBucketRequiresName(t *testing.T) {
	_, err := NewBucket("us-east-1", "", "")
	assert.Error(t, err)
}

func TestBucketElementDeletedBeforeWrite(t *testing.T) {
	ctx := context.Background()
	svc := newFakeS3()
	bucket := NewBucketWithClient(svc, "footers", "site/")
	_, err := bucket.Create(ctx, "footermessage")
	require.NoError(t, err)

	el, err := bucket.Element(ctx, "footermessage")
	require.NoError(t, err)
	delete(svc.objects, "site/footermessage")

	assert.ErrorIs(t, el.SetText(ctx, "late"), phrases.ErrTargetNotFound)
	_, recreated := svc.objects["site/footermessage"]
	assert.False(t, recreated)
}
