// Package catalog holds the entity models and repository ports the media
// pipeline and the review path read from and write to. The authoritative
// rows live in PostgreSQL; implementations are under
// internal/infrastructure/repository.
package catalog

import "time"

// Category is a product category. ImageURL and IconURL are media records
// owned by this entity and mutated only by the media worker pool.
type Category struct {
	ID       int64
	Name     string
	Slug     string
	ParentID *int64
	ImageURL *string
	IconURL  *string
}

// Brand is a product brand with a single logo media record.
type Brand struct {
	ID      int64
	Name    string
	LogoURL *string
}

// User is a platform account. Role gates the admin-only media operations.
type User struct {
	ID       string
	Username string
	Role     string
	ImageURL *string
}

// Store is a seller storefront. Rating is derived from its products.
type Store struct {
	ID      string
	OwnerID string
	Name    string
	Rating  float64
}

// Product carries three media records (main image, gallery, video) and a
// derived rating. Rating nil means the product has no reviews yet.
type Product struct {
	ID           string
	StoreID      string
	Name         string
	MainImageURL *string
	VideoURL     *string
	Rating       *float64
}

// ProductImage is one member of a product's gallery.
type ProductImage struct {
	ID        int64
	ProductID string
	URL       string
}

// Order is the minimal view of an order the review path needs.
type Order struct {
	ID        string
	UserID    string
	Status    string
	CreatedAt time.Time
}

// OrderStatusDelivered is the terminal status required before reviewing.
const OrderStatusDelivered = "DELIVERED"

// Roles recognised by the access policy.
const (
	RoleAdmin  = "ADMIN"
	RoleSeller = "SELLER"
	RoleUser   = "USER"
)
