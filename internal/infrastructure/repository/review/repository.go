package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storehub-server/internal/domain/apperrors"
	domain "storehub-server/internal/domain/review"
	"storehub-server/internal/infrastructure/database/entities"
)

// Repository handles review persistence and the aggregation queries.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Review, error) {
	var entity entities.Review
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("id = ?", id).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "find review", err)
	}

	productIDs := make([]string, len(entity.Products))
	for i, p := range entity.Products {
		productIDs[i] = p.ID
	}
	return &domain.Review{
		ID:         entity.ID,
		UserID:     entity.UserID,
		OrderID:    entity.OrderID,
		Rating:     entity.Rating,
		Comment:    entity.Comment,
		VideoURL:   entity.VideoURL,
		ProductIDs: productIDs,
		CreatedAt:  entity.CreatedAt,
	}, nil
}

// Create persists the review and its product links. Only the join rows are
// written for the association; the product rows already exist.
func (r *Repository) Create(ctx context.Context, review *domain.Review) error {
	entity := entities.Review{
		UserID:   review.UserID,
		OrderID:  review.OrderID,
		Rating:   review.Rating,
		Comment:  review.Comment,
		VideoURL: review.VideoURL,
		Products: make([]entities.Product, len(review.ProductIDs)),
	}
	for i, id := range review.ProductIDs {
		entity.Products[i] = entities.Product{ID: id}
	}

	err := r.db.WithContext(ctx).Omit("Products.*").Create(&entity).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "create review", err)
	}

	review.ID = entity.ID
	review.CreatedAt = entity.CreatedAt
	return nil
}

func (r *Repository) HasUserReviewedOrder(ctx context.Context, userID, orderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(apperrors.KindInternal, "count order reviews", err)
	}
	return count > 0, nil
}

func (r *Repository) ListRatingsByProduct(ctx context.Context, productID string) ([]float64, error) {
	var ratings []float64
	err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Joins("JOIN review_products rp ON rp.review_id = reviews.id").
		Where("rp.product_id = ?", productID).
		Pluck("reviews.rating", &ratings).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "list product ratings", err)
	}
	return ratings, nil
}

func (r *Repository) CountByRating(ctx context.Context, productID string) (map[int]int64, error) {
	var rows []struct {
		Rating float64
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Select("reviews.rating AS rating, COUNT(*) AS count").
		Joins("JOIN review_products rp ON rp.review_id = reviews.id").
		Where("rp.product_id = ?", productID).
		Group("reviews.rating").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "count ratings", err)
	}

	distribution := make(map[int]int64, 5)
	for star := 1; star <= 5; star++ {
		distribution[star] = 0
	}
	for _, row := range rows {
		distribution[int(row.Rating)] += row.Count
	}
	return distribution, nil
}

func (r *Repository) CountContent(ctx context.Context, productID string) (domain.ContentCounts, error) {
	var counts domain.ContentCounts
	err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Joins("JOIN review_products rp ON rp.review_id = reviews.id").
		Where("rp.product_id = ?", productID).
		Select(
			"COUNT(*) FILTER (WHERE reviews.comment IS NOT NULL AND reviews.comment <> '') AS with_comment, " +
				"COUNT(*) FILTER (WHERE reviews.video_url IS NOT NULL OR EXISTS " +
				"(SELECT 1 FROM review_images ri WHERE ri.review_id = reviews.id)) AS with_media").
		Scan(&counts).Error
	if err != nil {
		return domain.ContentCounts{}, apperrors.Wrap(apperrors.KindInternal, "count review content", err)
	}
	return counts, nil
}

func (r *Repository) ListImages(ctx context.Context, reviewID int64) ([]domain.Image, error) {
	var rows []entities.ReviewImage
	err := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "list review images", err)
	}
	images := make([]domain.Image, len(rows))
	for i, row := range rows {
		images[i] = domain.Image{
			ID:       row.ID,
			ReviewID: row.ReviewID,
			URL:      row.URL,
		}
	}
	return images, nil
}

// ReplaceImages swaps the review's image rows for the given urls in one
// transaction.
func (r *Repository) ReplaceImages(ctx context.Context, reviewID int64, urls []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", reviewID).Delete(&entities.ReviewImage{}).Error; err != nil {
			return err
		}
		if len(urls) == 0 {
			return nil
		}
		rows := make([]entities.ReviewImage, len(urls))
		for i, url := range urls {
			rows[i] = entities.ReviewImage{ReviewID: reviewID, URL: url}
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "replace review images", err)
	}
	return nil
}

func (r *Repository) SetVideoURL(ctx context.Context, reviewID int64, url *string) error {
	err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("id = ?", reviewID).
		Update("video_url", url).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update review video", err)
	}
	return nil
}
