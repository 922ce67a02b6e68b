package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordDigest string    `gorm:"not null" json:"-"`
	Admin          bool      `gorm:"not null;default:false" json:"admin"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	CartProducts []CartProduct `json:"-"`
	Orders       []Order       `json:"-"`
	Reviews      []Review      `json:"-"`
}
