// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their internal ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByProviderID retrieves a single user by the identity provider's subject identifier.
func (repo *userRepository) FindByProviderID(ctx context.Context, providerUserID string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("provider_user_id = ?", providerUserID).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by provider id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Two requests for the same subject raced; the record exists now.
			return domainerrors.ErrInternalError.WrapMessage("user already exists for this identity")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with the generated ID and timestamps.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		ProviderUserID: data.ProviderUserID,
		Name:           data.Name,
		Email:          data.Email,
		ProfilePhoto:   data.ProfilePhoto,
		Nickname:       data.Nickname,
		GivenName:      data.GivenName,
		FamilyName:     data.FamilyName,
		PhoneNumber:    data.PhoneNumber,
		EmailVerified:  data.EmailVerified,
		PhoneVerified:  data.PhoneVerified,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		ProviderUserID: data.ProviderUserID,
		Name:           data.Name,
		Email:          data.Email,
		ProfilePhoto:   data.ProfilePhoto,
		Nickname:       data.Nickname,
		GivenName:      data.GivenName,
		FamilyName:     data.FamilyName,
		PhoneNumber:    data.PhoneNumber,
		EmailVerified:  data.EmailVerified,
		PhoneVerified:  data.PhoneVerified,
	}
}
