package models

import "time"

// CartProduct is a pending quantity-of-product owned by a user before
// checkout. Rows are deleted en masse when an order is placed.
type CartProduct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UserID    uint      `gorm:"not null" json:"userId"`
	ProductID uint      `gorm:"not null" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
