package impl

import (
	"context"
	"log/slog"
	"strings"

	"vhiem/config"
	"vhiem/internal/domain/entity"
	domainerrors "vhiem/internal/domain/errors"
	"vhiem/internal/domain/repository"
	"vhiem/internal/domain/service"
	"vhiem/internal/usecase"
	"vhiem/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	txManager  repository.TransactionManager
	mediaStore service.MediaStore
	config     *config.Config
	logger     *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(
	txManager repository.TransactionManager,
	mediaStore service.MediaStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ContentUsecase {
	return &contentService{
		txManager:  txManager,
		mediaStore: mediaStore,
		config:     cfg,
		logger:     logger,
	}
}

// CreatePost persists a new post and awards the author type-based points.
func (srv *contentService) CreatePost(ctx context.Context, identity *entity.Identity, input *usecase.CreatePostInput) (*entity.Post, error) {
	postType := entity.PostType(input.Type)
	if !postType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown post type")
	}

	var post *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		post = &entity.Post{
			AuthorID: user.ID,
			Content:  input.Content,
			Type:     postType,
			Tags:     input.Tags,
			PhotoKey: input.PhotoKey,
		}
		if err := repoFactory.PostRepo().Create(ctx, post); err != nil {
			return errors.Wrap(err, "failed to create post")
		}

		description := "Shared a " + postType.String() + " post"

		return awardPoints(ctx, repoFactory, user.ID, postType.CreationPoints(), entity.PointActionPost, description)
	})

	if err != nil {
		srv.logger.Error("failed to create post", "error", err)

		return nil, errors.Wrap(err, "failed to create post")
	}

	return post, nil
}

// ListRecentPosts returns the newest posts enriched with author data and
// resolved media URLs.
func (srv *contentService) ListRecentPosts(ctx context.Context, viewer *entity.Identity) ([]*usecase.PostView, error) {
	var (
		views          []*usecase.PostView
		authorPhotoKey []string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		posts, err := repoFactory.PostRepo().ListRecent(ctx, srv.config.Feed.PostLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list posts")
		}

		var viewerID uuid.UUID
		viewerUser, err := resolveViewer(ctx, repoFactory, viewer)
		if err != nil {
			return err
		}
		if viewerUser != nil {
			viewerID = viewerUser.ID
		}

		views = make([]*usecase.PostView, 0, len(posts))
		authorPhotoKey = make([]string, 0, len(posts))

		for _, post := range posts {
			view := &usecase.PostView{
				Post:      post,
				IsOwnPost: post.AuthorID == viewerID,
			}

			name, photoKey, role, err := srv.authorFields(ctx, repoFactory, post.AuthorID)
			if err != nil {
				return err
			}
			view.AuthorName = name
			view.AuthorRole = role

			followers, err := repoFactory.FollowRepo().CountFollowers(ctx, post.AuthorID)
			if err != nil {
				return errors.Wrap(err, "failed to count author followers")
			}
			view.AuthorFollowers = followers

			views = append(views, view)
			authorPhotoKey = append(authorPhotoKey, photoKey)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent posts")
	}

	for i, view := range views {
		view.AuthorPhotoURL, err = srv.resolveMediaURL(ctx, authorPhotoKey[i])
		if err != nil {
			return nil, err
		}
		view.PhotoURL, err = srv.resolveMediaURL(ctx, view.Post.PhotoKey)
		if err != nil {
			return nil, err
		}
	}

	return views, nil
}

// AddComment creates a top-level comment, bumps the post's comment counter
// and awards the commenter.
func (srv *contentService) AddComment(ctx context.Context, identity *entity.Identity, postID uuid.UUID, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	var comment *entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "cannot comment on missing post")
			}

			return errors.Wrap(err, "failed to load post")
		}

		comment = &entity.Comment{
			PostID:         post.ID,
			AuthorID:       user.ID,
			Content:        input.Content,
			MentionedUsers: input.MentionedUsers,
		}
		if err := repoFactory.CommentRepo().CreateComment(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to create comment")
		}

		post.Comments++
		if err := postRepo.UpdateCounters(ctx, post); err != nil {
			return errors.Wrap(err, "failed to bump comment counter")
		}

		return awardPoints(ctx, repoFactory, user.ID, entity.CommentPoints, entity.PointActionComment, "Commented on a post")
	})

	if err != nil {
		srv.logger.Error("failed to add comment", "error", err, "postID", postID)

		return nil, errors.Wrap(err, "failed to add comment")
	}

	return comment, nil
}

// AddReply creates a reply under a comment and awards the replier. Replies
// carry no counters and bump none.
func (srv *contentService) AddReply(ctx context.Context, identity *entity.Identity, commentID uuid.UUID, input *usecase.CreateCommentInput) (*entity.CommentReply, error) {
	var reply *entity.CommentReply

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		commentRepo := repoFactory.CommentRepo()

		comment, err := commentRepo.FindCommentByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "cannot reply to missing comment")
			}

			return errors.Wrap(err, "failed to load comment")
		}

		reply = &entity.CommentReply{
			CommentID:      comment.ID,
			AuthorID:       user.ID,
			Content:        input.Content,
			MentionedUsers: input.MentionedUsers,
		}
		if err := commentRepo.CreateReply(ctx, reply); err != nil {
			return errors.Wrap(err, "failed to create reply")
		}

		return awardPoints(ctx, repoFactory, user.ID, entity.ReplyPoints, entity.PointActionReply, "Replied to a comment")
	})

	if err != nil {
		srv.logger.Error("failed to add reply", "error", err, "commentID", commentID)

		return nil, errors.Wrap(err, "failed to add reply")
	}

	return reply, nil
}

// ListPostComments returns a post's comments oldest-first, enriched with
// author data, the viewer's like state and nested replies.
func (srv *contentService) ListPostComments(ctx context.Context, viewer *entity.Identity, postID uuid.UUID) ([]*usecase.CommentView, error) {
	var (
		views           []*usecase.CommentView
		commentPhotoKey []string
		replyPhotoKey   map[*usecase.ReplyView]string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.PostRepo().FindByID(ctx, postID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "no such post")
			}

			return errors.Wrap(err, "failed to load post")
		}

		commentRepo := repoFactory.CommentRepo()

		comments, err := commentRepo.ListByPost(ctx, postID)
		if err != nil {
			return errors.Wrap(err, "failed to list comments")
		}

		var (
			viewerID      uuid.UUID
			authenticated bool
		)
		viewerUser, err := resolveViewer(ctx, repoFactory, viewer)
		if err != nil {
			return err
		}
		if viewerUser != nil {
			viewerID = viewerUser.ID
			authenticated = true
		}

		views = make([]*usecase.CommentView, 0, len(comments))
		commentPhotoKey = make([]string, 0, len(comments))
		replyPhotoKey = make(map[*usecase.ReplyView]string)

		for _, comment := range comments {
			view := &usecase.CommentView{
				Comment:  comment,
				Mentions: util.ExtractMentions(comment.Content),
				Replies:  []*usecase.ReplyView{},
			}

			name, photoKey, _, err := srv.authorFields(ctx, repoFactory, comment.AuthorID)
			if err != nil {
				return err
			}
			view.AuthorName = name

			if authenticated {
				if _, err := repoFactory.LikeRepo().FindByUserAndComment(ctx, viewerID, comment.ID); err == nil {
					view.HasLiked = true
				} else if !errors.Is(err, repository.ErrLikeNotFound) {
					return errors.Wrap(err, "failed to check comment like")
				}
			}

			replies, err := commentRepo.ListRepliesByComment(ctx, comment.ID)
			if err != nil {
				return errors.Wrap(err, "failed to list replies")
			}
			for _, reply := range replies {
				replyView := &usecase.ReplyView{
					Reply:    reply,
					Mentions: util.ExtractMentions(reply.Content),
				}

				replyName, replyKey, _, err := srv.authorFields(ctx, repoFactory, reply.AuthorID)
				if err != nil {
					return err
				}
				replyView.AuthorName = replyName
				replyPhotoKey[replyView] = replyKey

				view.Replies = append(view.Replies, replyView)
			}

			views = append(views, view)
			commentPhotoKey = append(commentPhotoKey, photoKey)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list post comments")
	}

	for i, view := range views {
		view.AuthorPhotoURL, err = srv.resolveMediaURL(ctx, commentPhotoKey[i])
		if err != nil {
			return nil, err
		}
		for _, replyView := range view.Replies {
			replyView.AuthorPhotoURL, err = srv.resolveMediaURL(ctx, replyPhotoKey[replyView])
			if err != nil {
				return nil, err
			}
		}
	}

	return views, nil
}

// SearchUsers matches display names case-insensitively. Queries shorter than
// two characters return an empty result.
func (srv *contentService) SearchUsers(ctx context.Context, query string) ([]*usecase.UserSummary, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []*usecase.UserSummary{}, nil
	}

	var (
		summaries []*usecase.UserSummary
		photoKeys []string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profiles, err := repoFactory.ProfileRepo().SearchByDisplayName(ctx, query, srv.config.Feed.SearchLimit)
		if err != nil {
			return errors.Wrap(err, "failed to search profiles")
		}

		summaries = make([]*usecase.UserSummary, 0, len(profiles))
		photoKeys = make([]string, 0, len(profiles))

		for _, profile := range profiles {
			summaries = append(summaries, &usecase.UserSummary{
				UserID:      profile.UserID,
				DisplayName: profile.DisplayName,
				Role:        profile.Role.String(),
			})
			photoKeys = append(photoKeys, profile.PhotoKey)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	for i, summary := range summaries {
		summary.PhotoURL, err = srv.resolveMediaURL(ctx, photoKeys[i])
		if err != nil {
			return nil, err
		}
	}

	return summaries, nil
}

// authorFields loads the display fields for a content author. Users without
// a profile fall back to the identity-provider name.
func (srv *contentService) authorFields(ctx context.Context, repoFactory repository.RepositoryFactory, authorID uuid.UUID) (name, photoKey, role string, err error) {
	profile, err := repoFactory.ProfileRepo().FindByUserID(ctx, authorID)
	if err == nil {
		return profile.DisplayName, profile.PhotoKey, profile.Role.String(), nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return "", "", "", errors.Wrap(err, "failed to load author profile")
	}

	user, err := repoFactory.UserRepo().FindByID(ctx, authorID)
	if err != nil {
		return "", "", "", errors.Wrap(err, "failed to load author")
	}

	return user.Name, "", "", nil
}

// resolveMediaURL exchanges a stored key for a fetchable URL. Empty keys and
// missing objects resolve to an empty URL.
func (srv *contentService) resolveMediaURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	mediaURL, err := srv.mediaStore.GetURL(ctx, key)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve media url")
	}

	return mediaURL, nil
}
