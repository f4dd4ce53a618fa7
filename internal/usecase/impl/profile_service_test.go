package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vhiem/internal/domain/entity"
	domainerrors "vhiem/internal/domain/errors"
	"vhiem/internal/domain/repository"
	mockRepo "vhiem/internal/mocks/repository"
	mockService "vhiem/internal/mocks/service"
	"vhiem/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service    usecase.ProfileUsecase
	txManager  *mockRepo.MockTransactionManager
	mediaStore *mockService.MockMediaStore
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	mediaStore := mockService.NewMockMediaStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(txManager, mediaStore, logger)

	return profileServiceFixtures{
		service:    service,
		txManager:  txManager,
		mediaStore: mediaStore,
	}
}

func testIdentity() *entity.Identity {
	return &entity.Identity{
		Subject: "auth0|abc123",
		Name:    "Test User",
		Email:   "test@example.com",
	}
}

// runInTransaction makes the mocked transaction manager invoke the provided
// closure against the given factory and propagate its error.
func runInTransaction(ctx context.Context, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestProfileService_CreateProfile_NewUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := testIdentity()
	input := &usecase.CreateProfileInput{
		Role:        "shopper",
		DisplayName: "Grace",
		Bio:         "Walking in faith",
	}

	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPointRepo := mockRepo.NewMockPointTransactionRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockFactory.EXPECT().PointRepo().Return(mockPointRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(nil, repository.ErrUserNotFound)
	mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	mockProfileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	mockPointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Run(func(_ context.Context, tx *entity.PointTransaction) {
			assert.Equal(t, userID, tx.UserID)
			assert.Equal(t, entity.WelcomePoints, tx.Points)
			assert.Equal(t, entity.PointActionWelcome, tx.Action)
		}).
		Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	profile, err := fx.service.CreateProfile(ctx, identity, input)

	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, entity.RoleShopper, profile.Role)
	assert.Equal(t, entity.WelcomePoints, profile.Points)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, []string{entity.NewcomerBadge}, profile.Badges)
	assert.False(t, profile.JoinedAt.IsZero())
	assert.WithinDuration(t, time.Now(), profile.JoinedAt, time.Minute)
}

func TestProfileService_CreateProfile_AlreadyExists(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := testIdentity()
	input := &usecase.CreateProfileInput{Role: "business", DisplayName: "Bread of Life Bakery"}

	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID}, nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	_, err := fx.service.CreateProfile(ctx, identity, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestProfileService_CreateProfile_Unauthenticated(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.CreateProfile(context.Background(), nil, &usecase.CreateProfileInput{
		Role:        "shopper",
		DisplayName: "Nobody",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestProfileService_CreateProfile_InvalidRole(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.CreateProfile(context.Background(), testIdentity(), &usecase.CreateProfileInput{
		Role:        "admin",
		DisplayName: "Sneaky",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_GetOwnProfile_NoProfileYet(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	runInTransaction(ctx, fx.txManager, mockFactory)

	view, err := fx.service.GetOwnProfile(ctx, identity)

	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestProfileService_GetOwnProfile_WithPhoto(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	profile := &entity.Profile{
		UserID:      userID,
		Role:        entity.RoleShopper,
		DisplayName: "Grace",
		PhotoKey:    "photo-key-1",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	fx.mediaStore.EXPECT().GetURL(ctx, "photo-key-1").Return("https://cdn.example.com/photo-key-1", nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	view, err := fx.service.GetOwnProfile(ctx, identity)

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, profile, view.Profile)
	assert.Equal(t, "https://cdn.example.com/photo-key-1", view.PhotoURL)
}

func TestProfileService_UpdateProfile_SparsePatch(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()

	existing := &entity.Profile{
		UserID:      userID,
		Role:        entity.RoleShopper,
		DisplayName: "Old Name",
		Bio:         "Old bio",
		Location:    "Lagos",
	}

	newName := "New Name"
	emptyBio := ""
	input := &usecase.UpdateProfileInput{
		DisplayName: &newName,
		Bio:         &emptyBio, // present but empty overwrites
		Interests:   &[]string{"worship", "service"},
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	err := fx.service.UpdateProfile(ctx, identity, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", existing.DisplayName)
	assert.Equal(t, "", existing.Bio)
	assert.Equal(t, []string{"worship", "service"}, existing.Interests)
	// Absent fields stay untouched.
	assert.Equal(t, "Lagos", existing.Location)
	assert.Equal(t, entity.RoleShopper, existing.Role)
}

func TestProfileService_SetProfilePhoto_DeletesPrevious(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	existing := &entity.Profile{UserID: userID, PhotoKey: "old-key"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	fx.mediaStore.EXPECT().Delete(ctx, "old-key").Return(nil)
	mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	err := fx.service.SetProfilePhoto(ctx, identity, "new-key")

	require.NoError(t, err)
	assert.Equal(t, "new-key", existing.PhotoKey)
}

func TestProfileService_AwardPoints_LevelsUp(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	profile := &entity.Profile{UserID: userID, Points: 950, Level: 1}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPointRepo := mockRepo.NewMockPointTransactionRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockFactory.EXPECT().PointRepo().Return(mockPointRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	mockPointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Run(func(_ context.Context, tx *entity.PointTransaction) {
			assert.Equal(t, 100, tx.Points)
			assert.Equal(t, "challenge", tx.Action)
		}).
		Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	result, err := fx.service.AwardPoints(ctx, identity, &usecase.AwardPointsInput{
		Points:      100,
		Action:      "challenge",
		Description: "Completed the daily challenge",
	})

	require.NoError(t, err)
	assert.Equal(t, 1050, result.Points)
	assert.Equal(t, 2, result.Level)
}

func TestProfileService_AwardPoints_NoProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	runInTransaction(ctx, fx.txManager, mockFactory)

	_, err := fx.service.AwardPoints(ctx, identity, &usecase.AwardPointsInput{Points: 10, Action: "misc"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}
