package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vhiem/config"
	"vhiem/internal/domain/entity"
	"vhiem/internal/domain/repository"
	mockRepo "vhiem/internal/mocks/repository"
	mockService "vhiem/internal/mocks/service"
	"vhiem/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// directoryServiceFixtures holds all test dependencies for directory service tests.
type directoryServiceFixtures struct {
	service    usecase.DirectoryUsecase
	txManager  *mockRepo.MockTransactionManager
	mediaStore *mockService.MockMediaStore
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	mediaStore := mockService.NewMockMediaStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Feed.LeaderboardLimit = 10
	cfg.Feed.DirectoryLimit = 50

	service := NewDirectoryService(txManager, mediaStore, cfg, logger)

	return directoryServiceFixtures{
		service:    service,
		txManager:  txManager,
		mediaStore: mediaStore,
	}
}

func TestDirectoryService_Leaderboard(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	firstID := uuid.New()
	secondID := uuid.New()
	profiles := []*entity.Profile{
		{
			UserID:      firstID,
			DisplayName: "Ruth",
			Role:        entity.RoleBusiness,
			Points:      4200,
			Level:       5,
			Badges:      []string{"newcomer", "encourager"},
			PhotoKey:    "ruth-photo",
		},
		{
			UserID:      secondID,
			DisplayName: "Boaz",
			Role:        entity.RoleShopper,
			Points:      1300,
			Level:       2,
			Badges:      []string{"newcomer"},
		},
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)

	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockProfileRepo.EXPECT().ListTopByPoints(ctx, 10).Return(profiles, nil)
	fx.mediaStore.EXPECT().GetURL(ctx, "ruth-photo").Return("https://cdn.example.com/ruth-photo", nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	entries, err := fx.service.Leaderboard(ctx)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, firstID, entries[0].UserID)
	assert.Equal(t, "Ruth", entries[0].DisplayName)
	assert.Equal(t, "business", entries[0].Role)
	assert.Equal(t, 4200, entries[0].Points)
	assert.Equal(t, 5, entries[0].Level)
	assert.Equal(t, []string{"newcomer", "encourager"}, entries[0].Badges)
	assert.Equal(t, "https://cdn.example.com/ruth-photo", entries[0].PhotoURL)
	assert.Equal(t, secondID, entries[1].UserID)
	assert.Empty(t, entries[1].PhotoURL)
}

func TestDirectoryService_ListUsers_Anonymous(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	profiles := []*entity.Profile{
		{UserID: uuid.New(), DisplayName: "Ruth", Role: entity.RoleShopper, Points: 100, Level: 1},
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)

	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockProfileRepo.EXPECT().ListRecent(ctx, 50).Return(profiles, nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	entries, err := fx.service.ListUsers(ctx, nil)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].CanFollow)
	assert.False(t, entries[0].IsFollowing)
}

func TestDirectoryService_ListUsers_ViewerLookupError(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	identity := testIdentity()
	profiles := []*entity.Profile{
		{UserID: uuid.New(), DisplayName: "Ruth", Role: entity.RoleShopper},
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)

	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	mockProfileRepo.EXPECT().ListRecent(ctx, 50).Return(profiles, nil)
	// A genuine lookup failure must propagate, not degrade to anonymous.
	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(nil, errors.New("connection reset"))

	runInTransaction(ctx, fx.txManager, mockFactory)

	entries, err := fx.service.ListUsers(ctx, identity)

	assert.Error(t, err)
	assert.Nil(t, entries)
}

func TestDirectoryService_ListUsers_ViewerRelations(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	identity := testIdentity()
	viewerID := uuid.New()
	followedID := uuid.New()
	strangerID := uuid.New()
	profiles := []*entity.Profile{
		{UserID: viewerID, DisplayName: "Me", Role: entity.RoleShopper},
		{UserID: followedID, DisplayName: "Ruth", Role: entity.RoleBusiness},
		{UserID: strangerID, DisplayName: "Boaz", Role: entity.RoleDeliveryDriver},
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFollowRepo := mockRepo.NewMockFollowRepository(t)

	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().FollowRepo().Return(mockFollowRepo)

	mockProfileRepo.EXPECT().ListRecent(ctx, 50).Return(profiles, nil)
	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: viewerID}, nil)
	mockFollowRepo.EXPECT().FindEdge(ctx, viewerID, followedID).Return(&entity.Follow{ID: uuid.New()}, nil)
	mockFollowRepo.EXPECT().FindEdge(ctx, viewerID, strangerID).Return(nil, repository.ErrFollowNotFound)

	runInTransaction(ctx, fx.txManager, mockFactory)

	entries, err := fx.service.ListUsers(ctx, identity)

	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.False(t, entries[0].CanFollow, "own row is not followable")
	assert.False(t, entries[0].IsFollowing)

	assert.True(t, entries[1].CanFollow)
	assert.True(t, entries[1].IsFollowing)

	assert.True(t, entries[2].CanFollow)
	assert.False(t, entries[2].IsFollowing)
}
