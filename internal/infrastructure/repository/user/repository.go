package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storehub-server/internal/domain/apperrors"
	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/infrastructure/database/entities"
)

// Repository handles user persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, id string) (*catalog.User, error) {
	var entity entities.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "find user", err)
	}
	return &catalog.User{
		ID:       entity.ID,
		Username: entity.Username,
		Role:     entity.Role,
		ImageURL: entity.ImageURL,
	}, nil
}

func (r *Repository) SetImageURL(ctx context.Context, id string, url *string) error {
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Update("image_url", url).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update user image", err)
	}
	return nil
}
