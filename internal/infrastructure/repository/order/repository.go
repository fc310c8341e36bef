package order

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storehub-server/internal/domain/apperrors"
	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/infrastructure/database/entities"
)

// Repository handles order reads for the review path.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, id string) (*catalog.Order, error) {
	var entity entities.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "find order", err)
	}
	return &catalog.Order{
		ID:        entity.ID,
		UserID:    entity.UserID,
		Status:    entity.Status,
		CreatedAt: entity.CreatedAt,
	}, nil
}

func (r *Repository) ProductIDs(ctx context.Context, orderID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entities.OrderItem{}).
		Where("order_id = ?", orderID).
		Distinct().
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "list order products", err)
	}
	return ids, nil
}
