package entities

import "time"

// Category represents a catalog category node.
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(128);not null"`
	Slug      string    `gorm:"type:varchar(160);uniqueIndex;not null"`
	ParentID  *int64    `gorm:"index"`
	ImageURL  *string   `gorm:"type:varchar(512)"`
	IconURL   *string   `gorm:"type:varchar(512)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}
