package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storehub-server/internal/domain/apperrors"
	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/infrastructure/database/entities"
)

// Repository handles store persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, id string) (*catalog.Store, error) {
	var entity entities.Store
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "find store", err)
	}
	return &catalog.Store{
		ID:      entity.ID,
		OwnerID: entity.OwnerID,
		Name:    entity.Name,
		Rating:  entity.Rating,
	}, nil
}

func (r *Repository) SetRating(ctx context.Context, id string, rating float64) error {
	err := r.db.WithContext(ctx).
		Model(&entities.Store{}).
		Where("id = ?", id).
		Update("rating", rating).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update store rating", err)
	}
	return nil
}
