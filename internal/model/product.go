package model

import "time"

// Product represents a catalog item (shirts, hoodies, etc.)
type Product struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"type:varchar(100);not null"`
	SKU       string     `json:"sku" gorm:"type:varchar(50);uniqueIndex;not null"`
	Category  string     `json:"category" gorm:"type:varchar(50)"`
	Price     float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	Cost      float64    `json:"cost" gorm:"type:decimal(10,2);not null"`
	Stock     int        `json:"stock" gorm:"default:0"`
	Colors    StringList `json:"colors" gorm:"type:text"`
	Sizes     StringList `json:"sizes" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
}
