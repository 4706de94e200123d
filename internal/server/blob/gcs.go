package blob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/dmitrijs2005/timevault/internal/common"
	"google.golang.org/api/option"
)

var newGCSClient = storage.NewClient

// GCSOptions configures a Cloud Storage bucket. Endpoint points the client
// at an emulator and disables authentication.
type GCSOptions struct {
	Bucket   string
	Prefix   string
	Endpoint string
}

// gcsObjects is the object-level surface of a bucket.
type gcsObjects interface {
	write(ctx context.Context, name string, data []byte) error
	read(ctx context.Context, name string) ([]byte, error)
	exists(ctx context.Context, name string) (bool, error)
	delete(ctx context.Context, name string) error
}

// GCSRepository stores blobs as objects under Prefix in one bucket.
type GCSRepository struct {
	objects gcsObjects
	prefix  string
	close   func() error
}

// NewGCSRepository opens a storage client for opts.Bucket.
func NewGCSRepository(ctx context.Context, opts GCSOptions) (*GCSRepository, error) {
	var clientOpts []option.ClientOption
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint), option.WithoutAuthentication())
	}

	client, err := newGCSClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}

	return &GCSRepository{
		objects: &bucketObjects{bucket: client.Bucket(opts.Bucket)},
		prefix:  opts.Prefix,
		close:   client.Close,
	}, nil
}

// Close releases the underlying client.
func (r *GCSRepository) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

func (r *GCSRepository) Put(ctx context.Context, data []byte) (string, error) {
	h := HandleFor(data)
	if err := r.objects.write(ctx, objectKey(r.prefix, h), data); err != nil {
		return "", fmt.Errorf("gcs put %s: %w", h, err)
	}
	return h, nil
}

func (r *GCSRepository) Get(ctx context.Context, handle string) ([]byte, error) {
	if !ValidHandle(handle) {
		return nil, common.ErrorNotFound
	}
	data, err := r.objects.read(ctx, objectKey(r.prefix, handle))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("gcs get %s: %w", handle, err)
	}
	return data, nil
}

func (r *GCSRepository) Exists(ctx context.Context, handle string) (bool, error) {
	if !ValidHandle(handle) {
		return false, nil
	}
	ok, err := r.objects.exists(ctx, objectKey(r.prefix, handle))
	if err != nil {
		return false, fmt.Errorf("gcs attrs %s: %w", handle, err)
	}
	return ok, nil
}

func (r *GCSRepository) Delete(ctx context.Context, handle string) error {
	if !ValidHandle(handle) {
		return nil
	}
	if err := r.objects.delete(ctx, objectKey(r.prefix, handle)); err != nil {
		return fmt.Errorf("gcs delete %s: %w", handle, err)
	}
	return nil
}

type bucketObjects struct {
	bucket *storage.BucketHandle
}

func (b *bucketObjects) write(ctx context.Context, name string, data []byte) error {
	w := b.bucket.Object(name).NewWriter(ctx)
	w.ContentType = "application/octet-stream"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (b *bucketObjects) read(ctx context.Context, name string) ([]byte, error) {
	rd, err := b.bucket.Object(name).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	defer rd.Close()
	return io.ReadAll(rd)
}

func (b *bucketObjects) exists(ctx context.Context, name string) (bool, error) {
	_, err := b.bucket.Object(name).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (b *bucketObjects) delete(ctx context.Context, name string) error {
	err := b.bucket.Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return err
	}
	return nil
}
