package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Rating    int       `gorm:"not null" json:"rating"`
	UserID    uint      `gorm:"not null" json:"userId"`
	ProductID uint      `gorm:"not null" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
