package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vhiem/internal/domain/entity"
	domainerrors "vhiem/internal/domain/errors"
	"vhiem/internal/domain/repository"
	mockRepo "vhiem/internal/mocks/repository"
	"vhiem/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// socialServiceFixtures holds all test dependencies for social service tests.
type socialServiceFixtures struct {
	service   usecase.SocialUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSocialService(t *testing.T) socialServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSocialService(txManager, logger)

	return socialServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestSocialService_Follow_CreatesEdge(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	targetID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFollowRepo := mockRepo.NewMockFollowRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().FollowRepo().Return(mockFollowRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockUserRepo.EXPECT().FindByID(ctx, targetID).Return(&entity.User{ID: targetID}, nil)
	mockFollowRepo.EXPECT().FindEdge(ctx, userID, targetID).Return(nil, repository.ErrFollowNotFound)
	mockFollowRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Follow")).
		Run(func(_ context.Context, follow *entity.Follow) {
			assert.Equal(t, userID, follow.FollowerID)
			assert.Equal(t, targetID, follow.FollowingID)
		}).
		Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	followed, err := fx.service.Follow(ctx, identity, targetID)

	require.NoError(t, err)
	assert.True(t, followed)
}

func TestSocialService_Follow_AlreadyFollowing(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	targetID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFollowRepo := mockRepo.NewMockFollowRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().FollowRepo().Return(mockFollowRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockUserRepo.EXPECT().FindByID(ctx, targetID).Return(&entity.User{ID: targetID}, nil)
	mockFollowRepo.EXPECT().FindEdge(ctx, userID, targetID).Return(&entity.Follow{ID: uuid.New()}, nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	followed, err := fx.service.Follow(ctx, identity, targetID)

	require.NoError(t, err)
	assert.False(t, followed)
}

func TestSocialService_Follow_Self(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	_, err := fx.service.Follow(ctx, identity, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfFollow))
}

func TestSocialService_Unfollow_NoEdge(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	targetID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFollowRepo := mockRepo.NewMockFollowRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().FollowRepo().Return(mockFollowRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockFollowRepo.EXPECT().FindEdge(ctx, userID, targetID).Return(nil, repository.ErrFollowNotFound)

	runInTransaction(ctx, fx.txManager, mockFactory)

	unfollowed, err := fx.service.Unfollow(ctx, identity, targetID)

	require.NoError(t, err)
	assert.False(t, unfollowed)
}

func TestSocialService_Unfollow_DeletesEdge(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	targetID := uuid.New()
	edgeID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFollowRepo := mockRepo.NewMockFollowRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().FollowRepo().Return(mockFollowRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockFollowRepo.EXPECT().FindEdge(ctx, userID, targetID).Return(&entity.Follow{ID: edgeID}, nil)
	mockFollowRepo.EXPECT().Delete(ctx, edgeID).Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	unfollowed, err := fx.service.Unfollow(ctx, identity, targetID)

	require.NoError(t, err)
	assert.True(t, unfollowed)
}

func TestSocialService_IsFollowing_Anonymous(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	mockFactory := mockRepo.NewMockRepositoryFactory(t)

	runInTransaction(ctx, fx.txManager, mockFactory)

	following, err := fx.service.IsFollowing(ctx, nil, uuid.New())

	require.NoError(t, err)
	assert.False(t, following)
}

func TestSocialService_FollowCounts(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFollowRepo := mockRepo.NewMockFollowRepository(t)

	mockFactory.EXPECT().FollowRepo().Return(mockFollowRepo)
	mockFollowRepo.EXPECT().CountFollowers(ctx, userID).Return(12, nil)
	mockFollowRepo.EXPECT().CountFollowing(ctx, userID).Return(3, nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	counts, err := fx.service.FollowCounts(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 12, counts.Followers)
	assert.Equal(t, 3, counts.Following)
}
