package entities

import "time"

// Product represents a sellable item. Rating is nil until the product has at
// least one review.
type Product struct {
	ID           string    `gorm:"type:varchar(40);primaryKey"`
	StoreID      string    `gorm:"type:varchar(40);index;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	MainImageURL *string   `gorm:"type:varchar(512)"`
	VideoURL     *string   `gorm:"type:varchar(512)"`
	Rating       *float64
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// ProductImage is one entry of a product's gallery.
type ProductImage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ProductID string    `gorm:"type:varchar(40);index;not null"`
	URL       string    `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
