// Package service defines the interfaces for domain services consumed by the
// use cases. Concrete implementations live under internal/infra.
package service

import "context"

// MediaStore is the contract with the external media storage collaborator.
// The application never stores raw bytes, only opaque storage keys; callers
// upload bytes out-of-band to the URL returned by GenerateUploadURL and
// exchange keys for fetchable URLs on read.
type MediaStore interface {
	// GenerateUploadURL returns a URL the caller can PUT raw bytes to, plus
	// the opaque storage key that will identify the uploaded object.
	GenerateUploadURL(ctx context.Context) (uploadURL string, key string, err error)

	// GetURL resolves a storage key to a fetchable URL. Returns an empty
	// string without error when the object does not exist.
	GetURL(ctx context.Context, key string) (string, error)

	// Delete removes the stored object. Replacing a profile photo must
	// delete the previous object first or the bucket leaks.
	Delete(ctx context.Context, key string) error
}
