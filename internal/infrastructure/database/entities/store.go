package entities

import "time"

// Store represents a seller's storefront. Rating is the rounded mean of the
// ratings of the store's rated products.
type Store struct {
	ID        string    `gorm:"type:varchar(40);primaryKey"`
	OwnerID   string    `gorm:"type:varchar(40);index;not null"`
	Name      string    `gorm:"type:varchar(128);not null"`
	Rating    float64   `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Store) TableName() string {
	return "stores"
}
