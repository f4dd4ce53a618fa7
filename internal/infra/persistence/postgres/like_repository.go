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

// likeRepository implements the domain.LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// FindByUserAndPost retrieves the like a user placed on a post, if any.
func (repo *likeRepository) FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*entity.Like, error) {
	var likeM model.LikeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&likeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like by user and post")
	}

	return toLikeDomain(&likeM), nil
}

// FindByUserAndComment retrieves the like a user placed on a comment, if any.
func (repo *likeRepository) FindByUserAndComment(ctx context.Context, userID, commentID uuid.UUID) (*entity.Like, error) {
	var likeM model.LikeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&likeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like by user and comment")
	}

	return toLikeDomain(&likeM), nil
}

// Create persists a new like.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Lost a race with another like from the same user; treat as a
			// database error, the toggle flow already checked for existence.
			return domainerrors.NewDatabaseExecuteError(err, "duplicate like")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// Delete removes a like by ID.
func (repo *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.LikeModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete like")
	}

	return nil
}

// --- Mapper Functions ---

func toLikeDomain(data *model.LikeModel) *entity.Like {
	if data == nil {
		return nil
	}

	return &entity.Like{
		ID:        data.ID,
		UserID:    data.UserID,
		PostID:    data.PostID,
		CommentID: data.CommentID,
		Type:      entity.LikeType(data.Type),
		CreatedAt: data.CreatedAt,
	}
}

func fromLikeDomain(data *entity.Like) *model.LikeModel {
	if data == nil {
		return nil
	}

	return &model.LikeModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PostID:    data.PostID,
		CommentID: data.CommentID,
		Type:      data.Type.String(),
	}
}
