package category

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storehub-server/internal/domain/apperrors"
	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/infrastructure/database/entities"
)

// Repository handles category persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, id int64) (*catalog.Category, error) {
	var entity entities.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "find category", err)
	}
	return &catalog.Category{
		ID:       entity.ID,
		Name:     entity.Name,
		Slug:     entity.Slug,
		ParentID: entity.ParentID,
		ImageURL: entity.ImageURL,
		IconURL:  entity.IconURL,
	}, nil
}

func (r *Repository) SetImageURL(ctx context.Context, id int64, url *string) error {
	err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("id = ?", id).
		Update("image_url", url).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update category image", err)
	}
	return nil
}

func (r *Repository) SetIconURL(ctx context.Context, id int64, url *string) error {
	err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("id = ?", id).
		Update("icon_url", url).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update category icon", err)
	}
	return nil
}
