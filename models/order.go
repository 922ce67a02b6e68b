package models

import "time"

type Order struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null" json:"userId"`
	ShippingOptionID uint      `gorm:"not null" json:"shippingOptionId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	OrderProducts []OrderProduct `json:"order_products"`
}
