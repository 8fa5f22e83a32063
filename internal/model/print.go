package model

import "time"

// Print image reference types
const (
	PrintImageURL   = "url"
	PrintImageLocal = "local"
)

// Print represents a print design asset
type Print struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"type:varchar(100);not null"`
	Technique string     `json:"technique" gorm:"type:varchar(50)"`
	Colors    string     `json:"colors" gorm:"type:varchar(50)"`
	ImageURL  string     `json:"image_url" gorm:"type:varchar(500)"`
	ImageType string     `json:"image_type" gorm:"type:varchar(10);default:'url'"`
	Tags      StringList `json:"tags" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
}

// ValidPrintImageType reports whether t is one of the accepted image reference types
func ValidPrintImageType(t string) bool {
	return t == PrintImageURL || t == PrintImageLocal
}
