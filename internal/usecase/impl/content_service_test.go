package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vhiem/config"
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

// contentServiceFixtures holds all test dependencies for content service tests.
type contentServiceFixtures struct {
	service    usecase.ContentUsecase
	txManager  *mockRepo.MockTransactionManager
	mediaStore *mockService.MockMediaStore
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	mediaStore := mockService.NewMockMediaStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Feed.PostLimit = 20
	cfg.Feed.SearchLimit = 5

	service := NewContentService(txManager, mediaStore, cfg, logger)

	return contentServiceFixtures{
		service:    service,
		txManager:  txManager,
		mediaStore: mediaStore,
	}
}

func TestContentService_CreatePost_VerseAwardsTwenty(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	profile := &entity.Profile{UserID: userID, Points: 100, Level: 1}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPostRepo := mockRepo.NewMockPostRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPointRepo := mockRepo.NewMockPointTransactionRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockFactory.EXPECT().PointRepo().Return(mockPointRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockPostRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Post")).Return(nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	mockPointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Run(func(_ context.Context, tx *entity.PointTransaction) {
			assert.Equal(t, 20, tx.Points)
			assert.Equal(t, entity.PointActionPost, tx.Action)
		}).
		Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	post, err := fx.service.CreatePost(ctx, identity, &usecase.CreatePostInput{
		Content: "In the beginning was the Word",
		Type:    "verse",
		Tags:    []string{"john"},
	})

	require.NoError(t, err)
	assert.Equal(t, userID, post.AuthorID)
	assert.Equal(t, entity.PostTypeVerse, post.Type)
	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, 120, profile.Points)
}

func TestContentService_CreatePost_InvalidType(t *testing.T) {
	fx := createTestContentService(t)

	_, err := fx.service.CreatePost(context.Background(), testIdentity(), &usecase.CreatePostInput{
		Content: "hello",
		Type:    "announcement",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestContentService_AddComment_BumpsCounterAndAwards(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	postID := uuid.New()
	post := &entity.Post{ID: postID, AuthorID: uuid.New(), Comments: 3}
	profile := &entity.Profile{UserID: userID, Points: 100, Level: 1}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPostRepo := mockRepo.NewMockPostRepository(t)
	mockCommentRepo := mockRepo.NewMockCommentRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPointRepo := mockRepo.NewMockPointTransactionRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
	mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockFactory.EXPECT().PointRepo().Return(mockPointRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockPostRepo.EXPECT().FindByID(ctx, postID).Return(post, nil)
	mockCommentRepo.EXPECT().CreateComment(ctx, mock.AnythingOfType("*entity.Comment")).Return(nil)
	mockPostRepo.EXPECT().UpdateCounters(ctx, post).Return(nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	mockPointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Run(func(_ context.Context, tx *entity.PointTransaction) {
			assert.Equal(t, entity.CommentPoints, tx.Points)
			assert.Equal(t, entity.PointActionComment, tx.Action)
		}).
		Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	comment, err := fx.service.AddComment(ctx, identity, postID, &usecase.CreateCommentInput{Content: "Amen"})

	require.NoError(t, err)
	assert.Equal(t, postID, comment.PostID)
	assert.Equal(t, 4, post.Comments)
	assert.Equal(t, 105, profile.Points)
}

func TestContentService_AddComment_PostNotFound(t *testing.T) {
	fx := createTestContentService(t)

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

	_, err := fx.service.AddComment(ctx, identity, postID, &usecase.CreateCommentInput{Content: "Amen"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestContentService_AddReply_NoCounterChanges(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	identity := testIdentity()
	userID := uuid.New()
	commentID := uuid.New()
	comment := &entity.Comment{ID: commentID, PostID: uuid.New()}
	profile := &entity.Profile{UserID: userID, Points: 100, Level: 1}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCommentRepo := mockRepo.NewMockCommentRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPointRepo := mockRepo.NewMockPointTransactionRepository(t)

	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockFactory.EXPECT().PointRepo().Return(mockPointRepo)

	mockUserRepo.EXPECT().FindByProviderID(ctx, identity.Subject).Return(&entity.User{ID: userID}, nil)
	mockCommentRepo.EXPECT().FindCommentByID(ctx, commentID).Return(comment, nil)
	// No UpdateCounters expectation: a reply must not touch any counter.
	mockCommentRepo.EXPECT().CreateReply(ctx, mock.AnythingOfType("*entity.CommentReply")).Return(nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	mockPointRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Run(func(_ context.Context, tx *entity.PointTransaction) {
			assert.Equal(t, entity.ReplyPoints, tx.Points)
			assert.Equal(t, entity.PointActionReply, tx.Action)
		}).
		Return(nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	reply, err := fx.service.AddReply(ctx, identity, commentID, &usecase.CreateCommentInput{Content: "Amen @Grace"})

	require.NoError(t, err)
	assert.Equal(t, commentID, reply.CommentID)
}

func TestContentService_SearchUsers_ShortQueryReturnsEmpty(t *testing.T) {
	fx := createTestContentService(t)

	for _, query := range []string{"", "a", " a ", "  "} {
		summaries, err := fx.service.SearchUsers(context.Background(), query)

		require.NoError(t, err)
		assert.Empty(t, summaries)
	}
}

func TestContentService_SearchUsers_MapsProfiles(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	userID := uuid.New()
	profiles := []*entity.Profile{
		{UserID: userID, DisplayName: "Grace Oke", Role: entity.RoleShopper, PhotoKey: "pk"},
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)

	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockProfileRepo.EXPECT().SearchByDisplayName(ctx, "gra", 5).Return(profiles, nil)

	fx.mediaStore.EXPECT().GetURL(ctx, "pk").Return("https://cdn.example.com/pk", nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	summaries, err := fx.service.SearchUsers(ctx, "gra")

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, userID, summaries[0].UserID)
	assert.Equal(t, "Grace Oke", summaries[0].DisplayName)
	assert.Equal(t, "https://cdn.example.com/pk", summaries[0].PhotoURL)
}

func TestContentService_ListRecentPosts_EnrichesAuthors(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	authorID := uuid.New()
	post := &entity.Post{ID: uuid.New(), AuthorID: authorID, Content: "Psalm 23", Type: entity.PostTypeVerse, PhotoKey: "post-photo"}
	authorProfile := &entity.Profile{UserID: authorID, DisplayName: "David", Role: entity.RoleShopper, PhotoKey: "author-photo"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockPostRepo := mockRepo.NewMockPostRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockFollowRepo := mockRepo.NewMockFollowRepository(t)

	mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
	mockFactory.EXPECT().FollowRepo().Return(mockFollowRepo)

	mockPostRepo.EXPECT().ListRecent(ctx, 20).Return([]*entity.Post{post}, nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, authorID).Return(authorProfile, nil)
	mockFollowRepo.EXPECT().CountFollowers(ctx, authorID).Return(7, nil)

	fx.mediaStore.EXPECT().GetURL(ctx, "author-photo").Return("https://cdn.example.com/author-photo", nil)
	fx.mediaStore.EXPECT().GetURL(ctx, "post-photo").Return("https://cdn.example.com/post-photo", nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	views, err := fx.service.ListRecentPosts(ctx, nil)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "David", views[0].AuthorName)
	assert.Equal(t, "shopper", views[0].AuthorRole)
	assert.Equal(t, 7, views[0].AuthorFollowers)
	assert.Equal(t, "https://cdn.example.com/author-photo", views[0].AuthorPhotoURL)
	assert.Equal(t, "https://cdn.example.com/post-photo", views[0].PhotoURL)
	assert.False(t, views[0].IsOwnPost)
}

func TestContentService_ListPostComments_NestedRepliesAndMentions(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	postID := uuid.New()
	commentAuthor := uuid.New()
	replyAuthor := uuid.New()
	comment := &entity.Comment{ID: uuid.New(), PostID: postID, AuthorID: commentAuthor, Content: "Standing with you @ruth"}
	reply := &entity.CommentReply{ID: uuid.New(), CommentID: comment.ID, AuthorID: replyAuthor, Content: "Amen"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockPostRepo := mockRepo.NewMockPostRepository(t)
	mockCommentRepo := mockRepo.NewMockCommentRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)

	mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
	mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
	mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

	mockPostRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID}, nil)
	mockCommentRepo.EXPECT().ListByPost(ctx, postID).Return([]*entity.Comment{comment}, nil)
	mockCommentRepo.EXPECT().ListRepliesByComment(ctx, comment.ID).Return([]*entity.CommentReply{reply}, nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, commentAuthor).Return(&entity.Profile{UserID: commentAuthor, DisplayName: "Naomi"}, nil)
	mockProfileRepo.EXPECT().FindByUserID(ctx, replyAuthor).Return(&entity.Profile{UserID: replyAuthor, DisplayName: "Ruth"}, nil)

	runInTransaction(ctx, fx.txManager, mockFactory)

	views, err := fx.service.ListPostComments(ctx, nil, postID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Naomi", views[0].AuthorName)
	assert.Equal(t, []string{"ruth"}, views[0].Mentions)
	assert.False(t, views[0].HasLiked)
	require.Len(t, views[0].Replies, 1)
	assert.Equal(t, "Ruth", views[0].Replies[0].AuthorName)
}
