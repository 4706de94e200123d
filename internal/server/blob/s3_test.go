package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	err     error
	keys    []string
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string][]byte{}} }

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(in.Body)
	f.keys = append(f.keys, *in.Bucket+"/"+*in.Key)
	f.objects[*in.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.objects[*in.Key]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Repository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	r := &S3Repository{client: fake, bucket: "vault", prefix: "blobs/"}

	h, err := r.Put(ctx, []byte("sealed"))
	require.NoError(t, err)
	assert.Equal(t, []string{"vault/blobs/" + h}, fake.keys)

	ok, err := r.Exists(ctx, h)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := r.Get(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed"), got)

	require.NoError(t, r.Delete(ctx, h))

	_, err = r.Get(ctx, h)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	ok, err = r.Exists(ctx, h)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestS3Repository_InvalidHandle(t *testing.T) {
	ctx := context.Background()
	r := &S3Repository{client: newFakeS3(), bucket: "vault"}

	_, err := r.Get(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	ok, err := r.Exists(ctx, "nope")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, r.Delete(ctx, "nope"))
}

func TestS3Repository_Errors(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	fake.err = errors.New("connection refused")
	r := &S3Repository{client: fake, bucket: "vault"}
	h := HandleFor([]byte("x"))

	_, err := r.Put(ctx, []byte("x"))
	assert.ErrorContains(t, err, "s3 put")

	_, err = r.Get(ctx, h)
	assert.ErrorContains(t, err, "s3 get")
	assert.NotErrorIs(t, err, common.ErrorNotFound)

	_, err = r.Exists(ctx, h)
	assert.ErrorContains(t, err, "s3 head")

	assert.ErrorContains(t, r.Delete(ctx, h), "s3 delete")
}

func TestNewS3Repository_AppliesOptions(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		if lo.Credentials == nil {
			t.Fatalf("credentials not applied")
		}
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		for _, fn := range optFns {
			fn(&opts)
		}
		return newFakeS3()
	}

	r, err := NewS3Repository(context.Background(), S3Options{
		Region:       "us-east-1",
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
		BaseEndpoint: "http://127.0.0.1:9000",
		Bucket:       "vault",
		Prefix:       "p/",
	})
	require.NoError(t, err)
	assert.Equal(t, "vault", r.bucket)
	assert.Equal(t, "p/", r.prefix)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3Repository_ConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("bad profile")
	}

	_, err := NewS3Repository(context.Background(), S3Options{Region: "us-east-1"})
	assert.ErrorContains(t, err, "bad profile")
}
