package entities

import "time"

// Order represents a purchase. Only delivered orders can be reviewed.
type Order struct {
	ID        string    `gorm:"type:varchar(40);primaryKey"`
	UserID    string    `gorm:"type:varchar(40);index;not null"`
	Status    string    `gorm:"type:varchar(24);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem links an order to a purchased product.
type OrderItem struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   string `gorm:"type:varchar(40);index;not null"`
	ProductID string `gorm:"type:varchar(40);index;not null"`
	Quantity  int    `gorm:"not null;default:1"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
