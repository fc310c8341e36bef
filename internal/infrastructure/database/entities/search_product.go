package entities

import (
	"time"

	"gorm.io/datatypes"
)

// SearchProduct is the denormalized search index record kept in step with
// the product table by the reconcile pass.
type SearchProduct struct {
	ID           int64                        `gorm:"primaryKey;autoIncrement"`
	ProductID    string                       `gorm:"type:varchar(40);uniqueIndex;not null"`
	Name         string                       `gorm:"type:varchar(255);not null"`
	MainImageURL *string                      `gorm:"type:varchar(512)"`
	ImageURLs    datatypes.JSONSlice[string]  `gorm:"type:jsonb"`
	VideoURL     *string                      `gorm:"type:varchar(512)"`
	Rating       *float64
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (SearchProduct) TableName() string {
	return "search_products"
}
