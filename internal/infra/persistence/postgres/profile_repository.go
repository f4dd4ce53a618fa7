package postgres

import (
	"context"

	"vhiem/internal/domain/entity"
	domainerrors "vhiem/internal/domain/errors"
	"vhiem/internal/domain/repository"
	"vhiem/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID retrieves the single profile belonging to a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile. The primary key on user_id backs the
// one-profile-per-user invariant; a duplicate insert surfaces as AlreadyExists.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("profile already exists for this user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update saves the full profile record.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// ListTopByPoints returns up to limit profiles ordered by points descending.
func (repo *profileRepository) ListTopByPoints(ctx context.Context, limit int) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Order("points DESC").
		Limit(limit).
		Find(&profileMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list top profiles")
	}

	return toProfileDomains(profileMs), nil
}

// ListRecent returns up to limit profiles ordered by creation descending.
func (repo *profileRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&profileMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent profiles")
	}

	return toProfileDomains(profileMs), nil
}

// SearchByDisplayName returns up to limit profiles whose display name
// contains the query, case-insensitively.
func (repo *profileRepository) SearchByDisplayName(ctx context.Context, query string, limit int) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("display_name ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&profileMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to search profiles by display name")
	}

	return toProfileDomains(profileMs), nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:           data.UserID,
		Role:             entity.Role(data.Role),
		DisplayName:      data.DisplayName,
		Bio:              data.Bio,
		Points:           data.Points,
		Level:            data.Level,
		Badges:           data.Badges,
		JoinedAt:         data.JoinedAt,
		PhotoKey:         data.PhotoKey,
		Location:         data.Location,
		Website:          data.Website,
		Phone:            data.Phone,
		BusinessName:     data.BusinessName,
		BusinessCategory: data.BusinessCategory,
		BusinessHours:    data.BusinessHours,
		BusinessServices: data.BusinessServices,
		VehicleType:      data.VehicleType,
		DeliveryRadius:   data.DeliveryRadius,
		Availability:     data.Availability,
		Interests:        data.Interests,
		FavoriteVerses:   data.FavoriteVerses,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toProfileDomains(data []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(data))
	for _, profileM := range data {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:           data.UserID,
		Role:             data.Role.String(),
		DisplayName:      data.DisplayName,
		Bio:              data.Bio,
		Points:           data.Points,
		Level:            data.Level,
		Badges:           data.Badges,
		JoinedAt:         data.JoinedAt,
		PhotoKey:         data.PhotoKey,
		Location:         data.Location,
		Website:          data.Website,
		Phone:            data.Phone,
		BusinessName:     data.BusinessName,
		BusinessCategory: data.BusinessCategory,
		BusinessHours:    data.BusinessHours,
		BusinessServices: data.BusinessServices,
		VehicleType:      data.VehicleType,
		DeliveryRadius:   data.DeliveryRadius,
		Availability:     data.Availability,
		Interests:        data.Interests,
		FavoriteVerses:   data.FavoriteVerses,
	}
}
