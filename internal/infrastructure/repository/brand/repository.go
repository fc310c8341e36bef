package brand

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storehub-server/internal/domain/apperrors"
	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/infrastructure/database/entities"
)

// Repository handles brand persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, id int64) (*catalog.Brand, error) {
	var entity entities.Brand
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "find brand", err)
	}
	return &catalog.Brand{
		ID:      entity.ID,
		Name:    entity.Name,
		LogoURL: entity.LogoURL,
	}, nil
}

func (r *Repository) SetLogoURL(ctx context.Context, id int64, url *string) error {
	err := r.db.WithContext(ctx).
		Model(&entities.Brand{}).
		Where("id = ?", id).
		Update("logo_url", url).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update brand logo", err)
	}
	return nil
}
