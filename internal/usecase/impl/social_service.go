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

// socialService implements the SocialUsecase interface.
type socialService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSocialService is the constructor for socialService.
func NewSocialService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SocialUsecase {
	return &socialService{
		txManager: txManager,
		logger:    logger,
	}
}

// Follow creates a follow edge from the caller to targetID. Returns false
// without error when the edge already exists.
func (srv *socialService) Follow(ctx context.Context, identity *entity.Identity, targetID uuid.UUID) (bool, error) {
	var created bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		if user.ID == targetID {
			return errors.Wrap(domainerrors.ErrSelfFollow, "cannot follow yourself")
		}

		if _, err := repoFactory.UserRepo().FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "follow target does not exist")
			}

			return errors.Wrap(err, "failed to load follow target")
		}

		followRepo := repoFactory.FollowRepo()

		if _, err := followRepo.FindEdge(ctx, user.ID, targetID); err == nil {
			// Already following; idempotent no-op.
			return nil
		} else if !errors.Is(err, repository.ErrFollowNotFound) {
			return errors.Wrap(err, "failed to check follow edge")
		}

		edge := &entity.Follow{FollowerID: user.ID, FollowingID: targetID}
		if err := followRepo.Create(ctx, edge); err != nil {
			return errors.Wrap(err, "failed to create follow edge")
		}
		created = true

		return nil
	})

	if err != nil {
		return false, errors.Wrap(err, "failed to follow user")
	}

	return created, nil
}

// Unfollow removes the caller's follow edge to targetID. Returns false
// without error when no edge exists.
func (srv *socialService) Unfollow(ctx context.Context, identity *entity.Identity, targetID uuid.UUID) (bool, error) {
	var removed bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		followRepo := repoFactory.FollowRepo()

		edge, err := followRepo.FindEdge(ctx, user.ID, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrFollowNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to check follow edge")
		}

		if err := followRepo.Delete(ctx, edge.ID); err != nil {
			return errors.Wrap(err, "failed to delete follow edge")
		}
		removed = true

		return nil
	})

	if err != nil {
		return false, errors.Wrap(err, "failed to unfollow user")
	}

	return removed, nil
}

// IsFollowing reports whether the caller follows targetID. Anonymous viewers
// always get false.
func (srv *socialService) IsFollowing(ctx context.Context, identity *entity.Identity, targetID uuid.UUID) (bool, error) {
	var following bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveViewer(ctx, repoFactory, identity)
		if err != nil {
			return err
		}
		if user == nil {
			return nil
		}

		if _, err := repoFactory.FollowRepo().FindEdge(ctx, user.ID, targetID); err != nil {
			if errors.Is(err, repository.ErrFollowNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to check follow edge")
		}
		following = true

		return nil
	})

	if err != nil {
		return false, errors.Wrap(err, "failed to check following state")
	}

	return following, nil
}

// FollowCounts returns a user's follower and following totals by scanning
// edges; nothing is cached on the profile.
func (srv *socialService) FollowCounts(ctx context.Context, userID uuid.UUID) (*entity.FollowCounts, error) {
	var counts *entity.FollowCounts

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		followRepo := repoFactory.FollowRepo()

		followers, err := followRepo.CountFollowers(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count followers")
		}

		following, err := followRepo.CountFollowing(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count following")
		}

		counts = &entity.FollowCounts{Followers: followers, Following: following}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get follow counts")
	}

	return counts, nil
}
