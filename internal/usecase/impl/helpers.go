// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	"vhiem/internal/domain/entity"
	domainerrors "vhiem/internal/domain/errors"
	"vhiem/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resolveUser maps identity-provider claims to the stored user record. A nil
// identity or a subject with no user row means the caller cannot act yet.
func resolveUser(ctx context.Context, repoFactory repository.RepositoryFactory, identity *entity.Identity) (*entity.User, error) {
	if identity == nil || identity.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "no identity")
	}

	user, err := repoFactory.UserRepo().FindByProviderID(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no user for identity")
		}

		return nil, errors.Wrap(err, "failed to resolve user")
	}

	return user, nil
}

// resolveViewer is the read-path variant of resolveUser. An anonymous or
// not-yet-registered viewer resolves to nil so relation fields stay false;
// any other lookup failure still propagates.
func resolveViewer(ctx context.Context, repoFactory repository.RepositoryFactory, identity *entity.Identity) (*entity.User, error) {
	user, err := resolveUser(ctx, repoFactory, identity)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) || errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return user, nil
}

// awardPoints is the single choke point for point awards. It patches the
// recipient's points and level and appends the matching ledger row, all on
// the caller's transaction. The delta may be negative.
func awardPoints(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, delta int, action, description string) error {
	profileRepo := repoFactory.ProfileRepo()

	profile, err := profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrProfileNotFound, "cannot award points without a profile")
		}

		return errors.Wrap(err, "failed to load profile for award")
	}

	profile.ApplyPointsDelta(delta)

	if err := profileRepo.Update(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to save awarded points")
	}

	ledgerRow := &entity.PointTransaction{
		UserID:      userID,
		Points:      delta,
		Action:      action,
		Description: description,
	}
	if err := repoFactory.PointRepo().Create(ctx, ledgerRow); err != nil {
		return errors.Wrap(err, "failed to append ledger row")
	}

	return nil
}
