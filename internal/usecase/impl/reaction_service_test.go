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

// reactionServiceFixtures holds all test dependencies for reaction service tests.
type reactionServiceFixtures struct {
	service   usecase.ReactionUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestReactionService(t *testing.T) reactionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewReactionService(txManager, logger)

	return reactionServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestReactionService_TogglePostLike_LikeAwardsAuthor(t *testing.T) {
	fx := createTestReactionService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	authorID := uuid.New()
	postID := uuid.New()
	post := &entity.Post{ID: postID, AuthorID: authorID, Likes: 2}
	authorProfile := &entity.Profile{UserID: authorID, Points: 100, Level: 1}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPostRepo := mockRepo.NewMockPostRepository(t)
	mockLikeRepo := mockRepo.NewMockLikeRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPointRepo := mockRepo.NewMockPointTransactionRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
	mockFactory.EXPECT().LikeRepo().Return(mockLikeRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockFactory.EXPECT().PointRepo().Return(mockPointRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockPostRepo.EXPECT().FindByID(ctx, postID).Return(post, nil)
	mockLikeRepo.EXPECT().FindByUserAndPost(ctx, userID, postID).Return(nil, repository.ErrLikeNotFound)
	mockLikeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Like")).
		Run(func(_ context.Context, like *entity.Like) {
			assert.Equal(t, userID, like.UserID)
			require.NotNil(t, like.PostID)
			assert.Equal(t, postID, *like.PostID)
			assert.Equal(t, entity.LikeTypePost, like.Type)
		}).
		Return(nil)
	mockPostRepo.EXPECT().UpdateCounters(ctx, post).Return(nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, authorID).Return(authorProfile, nil)
	mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	mockPointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Run(func(_ context.Context, tx *entity.PointTransaction) {
			assert.Equal(t, authorID, tx.UserID)
			assert.Equal(t, entity.LikeReceivedPoints, tx.Points)
			assert.Equal(t, entity.PointActionLikeReceived, tx.Action)
		}).
		Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	liked, err := fx.service.TogglePostLike(ctx, identity, postID)

	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 3, post.Likes)
	assert.Equal(t, 105, authorProfile.Points)
}

func TestReactionService_TogglePostLike_UnlikeFloorsAtZero(t *testing.T) {
	fx := createTestReactionService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	postID := uuid.New()
	likeID := uuid.New()
	// Counter already at zero from an earlier inconsistency; it must not go negative.
	post := &entity.Post{ID: postID, AuthorID: uuid.New(), Likes: 0}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPostRepo := mockRepo.NewMockPostRepository(t)
	mockLikeRepo := mockRepo.NewMockLikeRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
	mockFactory.EXPECT().LikeRepo().Return(mockLikeRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockPostRepo.EXPECT().FindByID(ctx, postID).Return(post, nil)
	mockLikeRepo.EXPECT().FindByUserAndPost(ctx, userID, postID).Return(&entity.Like{ID: likeID}, nil)
	mockLikeRepo.EXPECT().Delete(ctx, likeID).Return(nil)
	mockPostRepo.EXPECT().UpdateCounters(ctx, post).Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	liked, err := fx.service.TogglePostLike(ctx, identity, postID)

	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, post.Likes)
}

func TestReactionService_TogglePostLike_PostNotFound(t *testing.T) {
	fx := createTestReactionService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	postID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPostRepo := mockRepo.NewMockPostRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().PostRepo().Return(mockPostRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockPostRepo.EXPECT().FindByID(ctx, postID).Return(nil, repository.ErrPostNotFound)

	runInTransaction(ctx, fx.txManager, mockFactory)

	_, err := fx.service.TogglePostLike(ctx, identity, postID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestReactionService_ToggleCommentLike_LikeAwardsAuthor(t *testing.T) {
	fx := createTestReactionService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	authorID := uuid.New()
	commentID := uuid.New()
	comment := &entity.Comment{ID: commentID, AuthorID: authorID, Likes: 0}
	authorProfile := &entity.Profile{UserID: authorID, Points: 995, Level: 1}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCommentRepo := mockRepo.NewMockCommentRepository(t)
	mockLikeRepo := mockRepo.NewMockLikeRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPointRepo := mockRepo.NewMockPointTransactionRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
	mockFactory.EXPECT().LikeRepo().Return(mockLikeRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockFactory.EXPECT().PointRepo().Return(mockPointRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockCommentRepo.EXPECT().FindCommentByID(ctx, commentID).Return(comment, nil)
	mockLikeRepo.EXPECT().FindByUserAndComment(ctx, userID, commentID).Return(nil, repository.ErrLikeNotFound)
	mockLikeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Like")).Return(nil)
	mockCommentRepo.EXPECT().UpdateCounters(ctx, comment).Return(nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, authorID).Return(authorProfile, nil)
	mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	mockPointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Run(func(_ context.Context, tx *entity.PointTransaction) {
			assert.Equal(t, entity.PointActionCommentLikeReceived, tx.Action)
		}).
		Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	liked, err := fx.service.ToggleCommentLike(ctx, identity, commentID)

	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, comment.Likes)
	// Crossing the 1000-point threshold levels the author up.
	assert.Equal(t, 1000, authorProfile.Points)
	assert.Equal(t, 2, authorProfile.Level)
}
