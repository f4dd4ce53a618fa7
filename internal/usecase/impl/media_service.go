package impl

import (
	"context"
	"log/slog"

	"vhiem/internal/domain/service"
	"vhiem/internal/usecase"

	"github.com/pkg/errors"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	mediaStore service.MediaStore
	logger     *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(
	mediaStore service.MediaStore,
	logger *slog.Logger,
) usecase.MediaUsecase {
	return &mediaService{
		mediaStore: mediaStore,
		logger:     logger,
	}
}

// GenerateUploadURL mints a storage key and a short-lived upload URL.
func (srv *mediaService) GenerateUploadURL(ctx context.Context) (*usecase.UploadTarget, error) {
	uploadURL, key, err := srv.mediaStore.GenerateUploadURL(ctx)
	if err != nil {
		srv.logger.Error("failed to generate upload url", "error", err)

		return nil, errors.Wrap(err, "failed to generate upload url")
	}

	return &usecase.UploadTarget{UploadURL: uploadURL, Key: key}, nil
}
