package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"storehub-server/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	err := db.WithContext(ctx).AutoMigrate(
		&entities.Category{},
		&entities.Brand{},
		&entities.User{},
		&entities.Store{},
		&entities.Product{},
		&entities.ProductImage{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.Review{},
		&entities.ReviewImage{},
		&entities.SearchProduct{},
	)
	if err != nil {
		return err
	}
	log.Info().Msg("applied media pipeline migrations")
	return nil
}
