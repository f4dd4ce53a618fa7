package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	mockService "vhiem/internal/mocks/service"
	"vhiem/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mediaServiceFixtures holds all test dependencies for media service tests.
type mediaServiceFixtures struct {
	service    usecase.MediaUsecase
	mediaStore *mockService.MockMediaStore
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	mediaStore := mockService.NewMockMediaStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewMediaService(mediaStore, logger)

	return mediaServiceFixtures{
		service:    service,
		mediaStore: mediaStore,
	}
}

func TestMediaService_GenerateUploadURL(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	fx.mediaStore.EXPECT().GenerateUploadURL(ctx).
		Return("https://storage.example.com/upload?sig=abc", "photos/key-1", nil)

	target, err := fx.service.GenerateUploadURL(ctx)

	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/upload?sig=abc", target.UploadURL)
	assert.Equal(t, "photos/key-1", target.Key)
}

func TestMediaService_GenerateUploadURL_StoreFailure(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	fx.mediaStore.EXPECT().GenerateUploadURL(ctx).Return("", "", errors.New("bucket unavailable"))

	target, err := fx.service.GenerateUploadURL(ctx)

	assert.Error(t, err)
	assert.Nil(t, target)
}
