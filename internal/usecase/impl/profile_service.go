package impl

import (
	"context"
	"log/slog"
	"time"

	"vhiem/internal/domain/entity"
	domainerrors "vhiem/internal/domain/errors"
	"vhiem/internal/domain/repository"
	"vhiem/internal/domain/service"
	"vhiem/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager  repository.TransactionManager
	mediaStore service.MediaStore
	logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	mediaStore service.MediaStore,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:  txManager,
		mediaStore: mediaStore,
		logger:     logger,
	}
}

// CreateProfile registers the caller's profile, creating the backing user
// record on first contact and seeding the welcome bonus.
func (srv *profileService) CreateProfile(ctx context.Context, identity *entity.Identity, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	if identity == nil || identity.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "no identity")
	}

	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	srv.logger.Info("Creating profile", "subject", identity.Subject, "role", role)

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		// 1. Find or create the user record for this identity.
		user, err := userRepo.FindByProviderID(ctx, identity.Subject)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to look up user")
			}

			user = &entity.User{
				ProviderUserID: identity.Subject,
				Name:           identity.Name,
				Email:          identity.Email,
				ProfilePhoto:   identity.ProfileURL,
				Nickname:       identity.Nickname,
				GivenName:      identity.GivenName,
				FamilyName:     identity.FamilyName,
				PhoneNumber:    identity.PhoneNumber,
				EmailVerified:  identity.EmailVerified,
				PhoneVerified:  identity.PhoneVerified,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
		}

		// 2. Reject a second profile for the same user.
		if _, err := profileRepo.FindByUserID(ctx, user.ID); err == nil {
			return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "user already has a profile")
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to check for existing profile")
		}

		// 3. Seed the profile with the welcome bonus already applied.
		profile = &entity.Profile{
			UserID:      user.ID,
			Role:        role,
			DisplayName: input.DisplayName,
			Bio:         input.Bio,
			Points:      entity.WelcomePoints,
			Level:       entity.LevelForPoints(entity.WelcomePoints),
			Badges:      []string{entity.NewcomerBadge},
			JoinedAt:    time.Now(),
		}
		if err := profileRepo.Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		// 4. Record the welcome bonus in the ledger.
		welcomeRow := &entity.PointTransaction{
			UserID:      user.ID,
			Points:      entity.WelcomePoints,
			Action:      entity.PointActionWelcome,
			Description: "Welcome to the community!",
		}
		if err := repoFactory.PointRepo().Create(ctx, welcomeRow); err != nil {
			return errors.Wrap(err, "failed to record welcome bonus")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// GetOwnProfile returns the caller's user and profile, or (nil, nil) when no
// profile has been created yet.
func (srv *profileService) GetOwnProfile(ctx context.Context, identity *entity.Identity) (*usecase.OwnProfileView, error) {
	if identity == nil || identity.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "no identity")
	}

	var view *usecase.OwnProfileView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByProviderID(ctx, identity.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// First visit before profile creation; not an error.
				return nil
			}

			return errors.Wrap(err, "failed to look up user")
		}

		profile, err := repoFactory.ProfileRepo().FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to load profile")
		}

		view = &usecase.OwnProfileView{User: user, Profile: profile}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get own profile")
	}

	if view != nil && view.Profile.PhotoKey != "" {
		photoURL, err := srv.mediaStore.GetURL(ctx, view.Profile.PhotoKey)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve profile photo")
		}
		view.PhotoURL = photoURL
	}

	return view, nil
}

// GetProfileByUserID returns a public profile enriched with the viewer's
// relation to it.
func (srv *profileService) GetProfileByUserID(ctx context.Context, viewer *entity.Identity, userID uuid.UUID) (*usecase.ProfileDetailView, error) {
	var view *usecase.ProfileDetailView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.ProfileRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "no profile for user")
			}

			return errors.Wrap(err, "failed to load profile")
		}

		followRepo := repoFactory.FollowRepo()

		followers, err := followRepo.CountFollowers(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count followers")
		}
		following, err := followRepo.CountFollowing(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count following")
		}

		view = &usecase.ProfileDetailView{
			Profile:   profile,
			Followers: followers,
			Following: following,
		}

		// Relation fields stay false for anonymous viewers.
		viewerUser, err := resolveViewer(ctx, repoFactory, viewer)
		if err != nil {
			return err
		}
		if viewerUser == nil {
			return nil
		}

		view.IsOwnProfile = viewerUser.ID == userID
		view.CanFollow = !view.IsOwnProfile
		if !view.IsOwnProfile {
			if _, err := followRepo.FindEdge(ctx, viewerUser.ID, userID); err == nil {
				view.IsFollowing = true
			} else if !errors.Is(err, repository.ErrFollowNotFound) {
				return errors.Wrap(err, "failed to check follow edge")
			}
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	if view.Profile.PhotoKey != "" {
		photoURL, err := srv.mediaStore.GetURL(ctx, view.Profile.PhotoKey)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve profile photo")
		}
		view.PhotoURL = photoURL
	}

	return view, nil
}

// UpdateProfile applies a sparse patch to the caller's profile. Only fields
// present in the input are written; the role is not patchable.
func (srv *profileService) UpdateProfile(ctx context.Context, identity *entity.Identity, input *usecase.UpdateProfileInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "no profile to update")
			}

			return errors.Wrap(err, "failed to load profile")
		}

		applyProfilePatch(profile, input)

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

// SetProfilePhoto points the profile at a new media key. The previous object
// is deleted first so replaced photos do not pile up in the bucket.
func (srv *profileService) SetProfilePhoto(ctx context.Context, identity *entity.Identity, key string) error {
	if key == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "photo key must be provided")
	}

	return srv.replaceProfilePhoto(ctx, identity, key)
}

// ClearProfilePhoto removes the profile photo and its stored object.
func (srv *profileService) ClearProfilePhoto(ctx context.Context, identity *entity.Identity) error {
	return srv.replaceProfilePhoto(ctx, identity, "")
}

func (srv *profileService) replaceProfilePhoto(ctx context.Context, identity *entity.Identity, key string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "no profile to update")
			}

			return errors.Wrap(err, "failed to load profile")
		}

		if profile.PhotoKey != "" && profile.PhotoKey != key {
			if err := srv.mediaStore.Delete(ctx, profile.PhotoKey); err != nil {
				return errors.Wrap(err, "failed to delete previous photo")
			}
		}

		profile.PhotoKey = key

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile photo")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to replace profile photo")
	}

	return nil
}

// AwardPoints applies a signed point delta to the caller and reports the new
// totals.
func (srv *profileService) AwardPoints(ctx context.Context, identity *entity.Identity, input *usecase.AwardPointsInput) (*usecase.AwardPointsResult, error) {
	var result *usecase.AwardPointsResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		if err := awardPoints(ctx, repoFactory, user.ID, input.Points, input.Action, input.Description); err != nil {
			return err
		}

		profile, err := repoFactory.ProfileRepo().FindByUserID(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload profile")
		}
		result = &usecase.AwardPointsResult{Points: profile.Points, Level: profile.Level}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to award points", "error", err)

		return nil, errors.Wrap(err, "failed to award points")
	}

	return result, nil
}

// applyProfilePatch copies the present fields of the patch onto the profile.
func applyProfilePatch(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input.DisplayName != nil {
		profile.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.Website != nil {
		profile.Website = *input.Website
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.BusinessName != nil {
		profile.BusinessName = *input.BusinessName
	}
	if input.BusinessCategory != nil {
		profile.BusinessCategory = *input.BusinessCategory
	}
	if input.BusinessHours != nil {
		profile.BusinessHours = *input.BusinessHours
	}
	if input.BusinessServices != nil {
		profile.BusinessServices = *input.BusinessServices
	}
	if input.VehicleType != nil {
		profile.VehicleType = *input.VehicleType
	}
	if input.DeliveryRadius != nil {
		profile.DeliveryRadius = *input.DeliveryRadius
	}
	if input.Availability != nil {
		profile.Availability = *input.Availability
	}
	if input.Interests != nil {
		profile.Interests = *input.Interests
	}
	if input.FavoriteVerses != nil {
		profile.FavoriteVerses = *input.FavoriteVerses
	}
}
