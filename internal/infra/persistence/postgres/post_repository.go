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

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post with zeroed counters.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid author reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// FindByID retrieves a single post.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// ListRecent returns up to limit posts in reverse-chronological order.
func (repo *postRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Post, error) {
	var postMs []*model.PostModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&postMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// UpdateCounters persists the post's denormalized counters.
func (repo *postRepository) UpdateCounters(ctx context.Context, post *entity.Post) error {
	err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"likes":    post.Likes,
			"comments": post.Comments,
			"shares":   post.Shares,
		}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post counters")
	}

	return nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Content:   data.Content,
		Type:      entity.PostType(data.Type),
		Likes:     data.Likes,
		Comments:  data.Comments,
		Shares:    data.Shares,
		Tags:      data.Tags,
		PhotoKey:  data.PhotoKey,
		CreatedAt: data.CreatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:       data.ID,
		AuthorID: data.AuthorID,
		Content:  data.Content,
		Type:     data.Type.String(),
		Likes:    data.Likes,
		Comments: data.Comments,
		Shares:   data.Shares,
		Tags:     data.Tags,
		PhotoKey: data.PhotoKey,
	}
}
