package models

import "time"

type Product struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	Price          float64   `gorm:"not null" json:"price"`
	SmallImagePath string    `gorm:"not null" json:"small_image_path"`
	LargeImagePath string    `gorm:"not null" json:"large_image_path"`
	CategoryID     uint      `gorm:"not null" json:"categoryId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Reviews []Review `json:"reviews"`
}
