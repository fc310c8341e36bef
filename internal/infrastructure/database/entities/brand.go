package entities

import "time"

// Brand represents a product brand.
type Brand struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	LogoURL   *string   `gorm:"type:varchar(512)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Brand) TableName() string {
	return "brands"
}
