package search

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"storehub-server/internal/domain/apperrors"
	domain "storehub-server/internal/domain/search"
	"storehub-server/internal/infrastructure/database/entities"
)

// Repository handles the denormalized search records.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByProductID(ctx context.Context, productID string) (*domain.Record, error) {
	var entity entities.SearchProduct
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "find search record", err)
	}

	rating := 0.0
	if entity.Rating != nil {
		rating = *entity.Rating
	}
	return &domain.Record{
		ProductID:    entity.ProductID,
		Name:         entity.Name,
		MainImageURL: entity.MainImageURL,
		ImageURLs:    entity.ImageURLs,
		VideoURL:     entity.VideoURL,
		Rating:       rating,
	}, nil
}

// Update overwrites only the supplied fields on the product's record.
func (r *Repository) Update(ctx context.Context, productID string, fields domain.Fields) error {
	updates := map[string]interface{}{}
	if fields.MainImageURL != nil {
		updates["main_image_url"] = *fields.MainImageURL
	}
	if fields.ImageURLs != nil {
		updates["image_urls"] = datatypes.NewJSONSlice(*fields.ImageURLs)
	}
	if fields.VideoURL != nil {
		updates["video_url"] = *fields.VideoURL
	}
	if fields.Rating != nil {
		updates["rating"] = *fields.Rating
	}
	if len(updates) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&entities.SearchProduct{}).
		Where("product_id = ?", productID).
		Updates(updates).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update search record", err)
	}
	return nil
}
