package entities

import "time"

// Review represents a user's review of a delivered order. The products it
// covers are the products of that order.
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"type:varchar(40);index;not null"`
	OrderID   string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	Rating    float64   `gorm:"not null"`
	Comment   *string   `gorm:"type:text"`
	VideoURL  *string   `gorm:"type:varchar(512)"`
	Products  []Product `gorm:"many2many:review_products"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewImage is one entry of a review's image set.
type ReviewImage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ReviewID  int64     `gorm:"index;not null"`
	URL       string    `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ReviewImage) TableName() string {
	return "review_images"
}
