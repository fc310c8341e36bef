package entities

import "time"

// User represents an account that owns media and writes reviews.
type User struct {
	ID        string    `gorm:"type:varchar(40);primaryKey"`
	Username  string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Role      string    `gorm:"type:varchar(16);not null"`
	ImageURL  *string   `gorm:"type:varchar(512)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
