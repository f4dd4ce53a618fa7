package impl

import (
	"context"
	"log/slog"

	"vhiem/config"
	"vhiem/internal/domain/entity"
	"vhiem/internal/domain/repository"
	"vhiem/internal/domain/service"
	"vhiem/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	txManager  repository.TransactionManager
	mediaStore service.MediaStore
	config     *config.Config
	logger     *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(
	txManager repository.TransactionManager,
	mediaStore service.MediaStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		txManager:  txManager,
		mediaStore: mediaStore,
		config:     cfg,
		logger:     logger,
	}
}

// Leaderboard returns the top profiles by points, highest first.
func (srv *directoryService) Leaderboard(ctx context.Context) ([]*usecase.LeaderboardEntry, error) {
	var (
		entries   []*usecase.LeaderboardEntry
		photoKeys []string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profiles, err := repoFactory.ProfileRepo().ListTopByPoints(ctx, srv.config.Feed.LeaderboardLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list top profiles")
		}

		entries = make([]*usecase.LeaderboardEntry, 0, len(profiles))
		photoKeys = make([]string, 0, len(profiles))

		for _, profile := range profiles {
			entries = append(entries, &usecase.LeaderboardEntry{
				UserID:      profile.UserID,
				DisplayName: profile.DisplayName,
				Role:        profile.Role.String(),
				Points:      profile.Points,
				Level:       profile.Level,
				Badges:      profile.Badges,
			})
			photoKeys = append(photoKeys, profile.PhotoKey)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to build leaderboard")
	}

	for i, entry := range entries {
		if photoKeys[i] == "" {
			continue
		}
		entry.PhotoURL, err = srv.mediaStore.GetURL(ctx, photoKeys[i])
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve leaderboard photo")
		}
	}

	return entries, nil
}

// ListUsers returns the newest profiles enriched with the viewer's relation
// to each.
func (srv *directoryService) ListUsers(ctx context.Context, viewer *entity.Identity) ([]*usecase.DirectoryEntry, error) {
	var (
		entries   []*usecase.DirectoryEntry
		photoKeys []string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profiles, err := repoFactory.ProfileRepo().ListRecent(ctx, srv.config.Feed.DirectoryLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
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

		var followRepo repository.FollowRepository
		if authenticated {
			followRepo = repoFactory.FollowRepo()
		}

		entries = make([]*usecase.DirectoryEntry, 0, len(profiles))
		photoKeys = make([]string, 0, len(profiles))

		for _, profile := range profiles {
			entry := &usecase.DirectoryEntry{
				UserID:      profile.UserID,
				DisplayName: profile.DisplayName,
				Role:        profile.Role.String(),
				Bio:         profile.Bio,
				Points:      profile.Points,
				Level:       profile.Level,
			}

			if authenticated && profile.UserID != viewerID {
				entry.CanFollow = true
				if _, err := followRepo.FindEdge(ctx, viewerID, profile.UserID); err == nil {
					entry.IsFollowing = true
				} else if !errors.Is(err, repository.ErrFollowNotFound) {
					return errors.Wrap(err, "failed to check follow edge")
				}
			}

			entries = append(entries, entry)
			photoKeys = append(photoKeys, profile.PhotoKey)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	for i, entry := range entries {
		if photoKeys[i] == "" {
			continue
		}
		entry.PhotoURL, err = srv.mediaStore.GetURL(ctx, photoKeys[i])
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve directory photo")
		}
	}

	return entries, nil
}
