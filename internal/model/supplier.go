package model

import "time"

// Supplier status values
const (
	SupplierActive   = "Ativo"
	SupplierInactive = "Inativo"
)

// Supplier represents a production supplier (fabrics, printing, finishing)
type Supplier struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"type:varchar(100);not null"`
	Contact            string    `json:"contact" gorm:"type:varchar(100)"`
	Email              string    `json:"email" gorm:"type:varchar(120)"`
	Phone              string    `json:"phone" gorm:"type:varchar(20)"`
	Category           string    `json:"category" gorm:"type:varchar(50)"`
	Status             string    `json:"status" gorm:"type:varchar(20);default:'Ativo'"`
	Rating             int       `json:"rating" gorm:"default:5"`
	ProductionTimeDays int       `json:"production_time_days" gorm:"default:7"`
	CreatedAt          time.Time `json:"created_at"`
}

// ValidSupplierStatus reports whether s is one of the accepted supplier statuses
func ValidSupplierStatus(s string) bool {
	return s == SupplierActive || s == SupplierInactive
}
