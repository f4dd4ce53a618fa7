package impl

import (
	"context"
	"log/slog"

	"vhiem/internal/domain/entity"
	domainerrors "vhiem/internal/domain/errors"
	"vhiem/internal/domain/repository"
	"vhiem/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reactionService implements the ReactionUsecase interface.
type reactionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReactionService is the constructor for reactionService.
func NewReactionService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ReactionUsecase {
	return &reactionService{
		txManager: txManager,
		logger:    logger,
	}
}

// TogglePostLike flips the caller's like on a post. Liking bumps the post's
// counter and awards the post's author; unliking decrements, flooring at 0.
func (srv *reactionService) TogglePostLike(ctx context.Context, identity *entity.Identity, postID uuid.UUID) (bool, error) {
	var liked bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "cannot like missing post")
			}

			return errors.Wrap(err, "failed to load post")
		}

		likeRepo := repoFactory.LikeRepo()

		existing, err := likeRepo.FindByUserAndPost(ctx, user.ID, postID)
		if err != nil && !errors.Is(err, repository.ErrLikeNotFound) {
			return errors.Wrap(err, "failed to check existing like")
		}

		if existing != nil {
			// Unlike: delete the record and decrement, never below zero.
			if err := likeRepo.Delete(ctx, existing.ID); err != nil {
				return errors.Wrap(err, "failed to delete like")
			}
			if post.Likes > 0 {
				post.Likes--
			}

			return errors.Wrap(postRepo.UpdateCounters(ctx, post), "failed to update like counter")
		}

		like := &entity.Like{
			UserID: user.ID,
			PostID: &postID,
			Type:   entity.LikeTypePost,
		}
		if err := likeRepo.Create(ctx, like); err != nil {
			return errors.Wrap(err, "failed to create like")
		}

		post.Likes++
		if err := postRepo.UpdateCounters(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update like counter")
		}

		// The award goes to the post's author, not the liker.
		if err := awardPoints(ctx, repoFactory, post.AuthorID, entity.LikeReceivedPoints, entity.PointActionLikeReceived, "Received a like on a post"); err != nil {
			return err
		}
		liked = true

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to toggle post like", "error", err, "postID", postID)

		return false, errors.Wrap(err, "failed to toggle post like")
	}

	return liked, nil
}

// ToggleCommentLike is the comment counterpart of TogglePostLike.
func (srv *reactionService) ToggleCommentLike(ctx context.Context, identity *entity.Identity, commentID uuid.UUID) (bool, error) {
	var liked bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		commentRepo := repoFactory.CommentRepo()

		comment, err := commentRepo.FindCommentByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "cannot like missing comment")
			}

			return errors.Wrap(err, "failed to load comment")
		}

		likeRepo := repoFactory.LikeRepo()

		existing, err := likeRepo.FindByUserAndComment(ctx, user.ID, commentID)
		if err != nil && !errors.Is(err, repository.ErrLikeNotFound) {
			return errors.Wrap(err, "failed to check existing like")
		}

		if existing != nil {
			if err := likeRepo.Delete(ctx, existing.ID); err != nil {
				return errors.Wrap(err, "failed to delete like")
			}
			if comment.Likes > 0 {
				comment.Likes--
			}

			return errors.Wrap(commentRepo.UpdateCounters(ctx, comment), "failed to update like counter")
		}

		like := &entity.Like{
			UserID:    user.ID,
			CommentID: &commentID,
			Type:      entity.LikeTypeComment,
		}
		if err := likeRepo.Create(ctx, like); err != nil {
			return errors.Wrap(err, "failed to create like")
		}

		comment.Likes++
		if err := commentRepo.UpdateCounters(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to update like counter")
		}

		if err := awardPoints(ctx, repoFactory, comment.AuthorID, entity.LikeReceivedPoints, entity.PointActionCommentLikeReceived, "Received a like on a comment"); err != nil {
			return err
		}
		liked = true

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to toggle comment like", "error", err, "commentID", commentID)

		return false, errors.Wrap(err, "failed to toggle comment like")
	}

	return liked, nil
}
