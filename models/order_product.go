package models

import "time"

// OrderProduct snapshots price and quantity at placement time; Price is a
// point-in-time copy, decoupled from later product price changes.
type OrderProduct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Price     float64   `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	OrderID   uint      `gorm:"not null" json:"orderId"`
	ProductID uint      `gorm:"not null" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
