package product

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storehub-server/internal/domain/apperrors"
	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/infrastructure/database/entities"
)

// Repository handles product and gallery persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, id string) (*catalog.Product, error) {
	var entity entities.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "find product", err)
	}
	return &catalog.Product{
		ID:           entity.ID,
		StoreID:      entity.StoreID,
		Name:         entity.Name,
		MainImageURL: entity.MainImageURL,
		VideoURL:     entity.VideoURL,
		Rating:       entity.Rating,
	}, nil
}

func (r *Repository) SetMainImageURL(ctx context.Context, id string, url *string) error {
	err := r.db.WithContext(ctx).
		Model(&entities.Product{}).
		Where("id = ?", id).
		Update("main_image_url", url).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update product main image", err)
	}
	return nil
}

func (r *Repository) SetVideoURL(ctx context.Context, id string, url *string) error {
	err := r.db.WithContext(ctx).
		Model(&entities.Product{}).
		Where("id = ?", id).
		Update("video_url", url).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update product video", err)
	}
	return nil
}

func (r *Repository) SetRating(ctx context.Context, id string, rating *float64) error {
	err := r.db.WithContext(ctx).
		Model(&entities.Product{}).
		Where("id = ?", id).
		Update("rating", rating).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update product rating", err)
	}
	return nil
}

func (r *Repository) ListImages(ctx context.Context, productID string) ([]catalog.ProductImage, error) {
	var rows []entities.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "list product images", err)
	}
	return mapImages(rows), nil
}

func (r *Repository) GetImages(ctx context.Context, ids []int64) ([]catalog.ProductImage, error) {
	var rows []entities.ProductImage
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "get product images", err)
	}
	return mapImages(rows), nil
}

// ReplaceImages swaps the product's gallery rows for the given urls in one
// transaction.
func (r *Repository) ReplaceImages(ctx context.Context, productID string, urls []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&entities.ProductImage{}).Error; err != nil {
			return err
		}
		if len(urls) == 0 {
			return nil
		}
		rows := make([]entities.ProductImage, len(urls))
		for i, url := range urls {
			rows[i] = entities.ProductImage{ProductID: productID, URL: url}
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "replace product images", err)
	}
	return nil
}

func (r *Repository) DeleteImages(ctx context.Context, productID string, ids []int64) error {
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND id IN ?", productID, ids).
		Delete(&entities.ProductImage{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "delete product images", err)
	}
	return nil
}

func (r *Repository) ListRatingsByStore(ctx context.Context, storeID string) ([]float64, error) {
	var ratings []float64
	err := r.db.WithContext(ctx).
		Model(&entities.Product{}).
		Where("store_id = ? AND rating IS NOT NULL", storeID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "list store ratings", err)
	}
	return ratings, nil
}

func mapImages(rows []entities.ProductImage) []catalog.ProductImage {
	images := make([]catalog.ProductImage, len(rows))
	for i, row := range rows {
		images[i] = catalog.ProductImage{
			ID:        row.ID,
			ProductID: row.ProductID,
			URL:       row.URL,
		}
	}
	return images
}
