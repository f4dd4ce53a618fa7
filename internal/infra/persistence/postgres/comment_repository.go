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

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// CreateComment persists a new comment.
func (repo *commentRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid post or author reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// FindCommentByID retrieves a single comment.
func (repo *commentRepository) FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// ListByPost returns a post's comments in chronological order.
func (repo *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	var commentMs []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&commentMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments for post")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for _, commentM := range commentMs {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// UpdateCounters persists the comment's denormalized like counter.
func (repo *commentRepository) UpdateCounters(ctx context.Context, comment *entity.Comment) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Update("likes", comment.Likes).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update comment counters")
	}

	return nil
}

// CreateReply persists a new reply under a comment.
func (repo *commentRepository) CreateReply(ctx context.Context, reply *entity.CommentReply) error {
	replyM := fromReplyDomain(reply)

	if err := repo.db.WithContext(ctx).Create(replyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid comment or author reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reply")
	}

	reply.ID = replyM.ID
	reply.CreatedAt = replyM.CreatedAt

	return nil
}

// ListRepliesByComment returns a comment's replies in chronological order.
func (repo *commentRepository) ListRepliesByComment(ctx context.Context, commentID uuid.UUID) ([]*entity.CommentReply, error) {
	var replyMs []*model.CommentReplyModel
	err := repo.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Find(&replyMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list replies for comment")
	}

	replies := make([]*entity.CommentReply, 0, len(replyMs))
	for _, replyM := range replyMs {
		replies = append(replies, toReplyDomain(replyM))
	}

	return replies, nil
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:             data.ID,
		PostID:         data.PostID,
		AuthorID:       data.AuthorID,
		Content:        data.Content,
		Likes:          data.Likes,
		MentionedUsers: data.MentionedUsers,
		CreatedAt:      data.CreatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:             data.ID,
		PostID:         data.PostID,
		AuthorID:       data.AuthorID,
		Content:        data.Content,
		Likes:          data.Likes,
		MentionedUsers: data.MentionedUsers,
	}
}

func toReplyDomain(data *model.CommentReplyModel) *entity.CommentReply {
	if data == nil {
		return nil
	}

	return &entity.CommentReply{
		ID:             data.ID,
		CommentID:      data.CommentID,
		AuthorID:       data.AuthorID,
		Content:        data.Content,
		MentionedUsers: data.MentionedUsers,
		CreatedAt:      data.CreatedAt,
	}
}

func fromReplyDomain(data *entity.CommentReply) *model.CommentReplyModel {
	if data == nil {
		return nil
	}

	return &model.CommentReplyModel{
		ID:             data.ID,
		CommentID:      data.CommentID,
		AuthorID:       data.AuthorID,
		Content:        data.Content,
		MentionedUsers: data.MentionedUsers,
	}
}
