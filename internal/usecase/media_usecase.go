package usecase

import "context"

// MediaUsecase defines the interface for media upload negotiation. Bytes are
// uploaded by the client directly to the returned URL; the application only
// tracks keys.
type MediaUsecase interface {
	// GenerateUploadURL mints a storage key and a short-lived URL the client
	// can PUT the object to.
	GenerateUploadURL(ctx context.Context) (*UploadTarget, error)
}

// UploadTarget is the result of upload negotiation.
type UploadTarget struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}
