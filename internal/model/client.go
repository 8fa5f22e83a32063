package model

import "time"

// Client represents a registered customer
type Client struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Contact   string    `json:"contact" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"type:varchar(120)"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)"`
	Address   string    `json:"address" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
