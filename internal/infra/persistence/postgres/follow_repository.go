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

// followRepository implements the domain.FollowRepository interface using GORM.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

// FindEdge retrieves the directed edge from follower to following, if any.
func (repo *followRepository) FindEdge(ctx context.Context, followerID, followingID uuid.UUID) (*entity.Follow, error) {
	var followM model.FollowModel
	err := repo.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&followM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFollowNotFound
		}

		return nil, errors.Wrap(err, "failed to find follow edge")
	}

	return toFollowDomain(&followM), nil
}

// Create persists a new follow edge.
func (repo *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	followM := fromFollowDomain(follow)

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "duplicate follow edge")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow edge")
	}

	follow.ID = followM.ID
	follow.CreatedAt = followM.CreatedAt

	return nil
}

// Delete removes a follow edge by ID.
func (repo *followRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.FollowModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete follow edge")
	}

	return nil
}

// CountFollowers returns the number of edges pointing at userID.
func (repo *followRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("following_id = ?", userID).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count followers")
	}

	return int(count), nil
}

// CountFollowing returns the number of edges originating from userID.
func (repo *followRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ?", userID).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count following")
	}

	return int(count), nil
}

// --- Mapper Functions ---

func toFollowDomain(data *model.FollowModel) *entity.Follow {
	if data == nil {
		return nil
	}

	return &entity.Follow{
		ID:          data.ID,
		FollowerID:  data.FollowerID,
		FollowingID: data.FollowingID,
		CreatedAt:   data.CreatedAt,
	}
}

func fromFollowDomain(data *entity.Follow) *model.FollowModel {
	if data == nil {
		return nil
	}

	return &model.FollowModel{
		ID:          data.ID,
		FollowerID:  data.FollowerID,
		FollowingID: data.FollowingID,
	}
}
