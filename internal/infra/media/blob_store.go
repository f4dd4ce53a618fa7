// Package media implements the media store on top of a gocloud.dev blob
// bucket, so the same code serves S3, GCS or a local directory.
package media

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"

	"vhiem/config"
	"vhiem/internal/domain/service"
)

// blobStore exchanges opaque storage keys for signed URLs. Bytes never flow
// through the application; clients talk to the bucket directly.
type blobStore struct {
	bucket *blob.Bucket
	config *config.Config
}

// NewBlobStore is the constructor for blobStore. The bucket is opened eagerly
// and closed on application shutdown.
func NewBlobStore(lc fx.Lifecycle, cfg *config.Config) (service.MediaStore, error) {
	if cfg.Media == nil || cfg.Media.BucketURL == "" {
		return nil, errors.New("media bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{bucket: bucket, config: cfg}, nil
}

// GenerateUploadURL mints a fresh storage key and a signed PUT URL for it.
func (s *blobStore) GenerateUploadURL(ctx context.Context) (string, string, error) {
	key := uuid.NewString()

	uploadURL, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Method: http.MethodPut,
		Expiry: s.config.Media.SignedURLExpiry,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign upload url")
	}

	return uploadURL, key, nil
}

// GetURL resolves a key to a signed GET URL, or an empty string when the
// object was never uploaded or has been deleted.
func (s *blobStore) GetURL(ctx context.Context, key string) (string, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return "", errors.Wrap(err, "failed to check media object")
	}
	if !exists {
		return "", nil
	}

	fetchURL, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Method: http.MethodGet,
		Expiry: s.config.Media.SignedURLExpiry,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to sign fetch url")
	}

	return fetchURL, nil
}

// Delete removes the stored object. Deleting a missing object is not an
// error; the caller only cares that the key no longer resolves.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrap(err, "failed to check media object")
	}
	if !exists {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete media object")
	}

	return nil
}
