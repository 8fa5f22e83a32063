package model

import "time"

// Transaction kinds
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction status values
const (
	TransactionPending   = "Pendente"
	TransactionConfirmed = "Confirmado"
	TransactionScheduled = "Agendado"
)

// Transaction represents a financial movement, optionally tied to an order
type Transaction struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	TransactionNumber string    `json:"transaction_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	OrderID           *uint     `json:"order_id" gorm:"index"`
	Order             *Order    `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	Description       string    `json:"description" gorm:"type:text;not null"`
	Category          string    `json:"category" gorm:"type:varchar(50)"`
	Type              string    `json:"type" gorm:"type:varchar(10);not null"`
	Amount            float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status            string    `json:"status" gorm:"type:varchar(20);default:'Pendente'"`
	TransactionDate   time.Time `json:"transaction_date" gorm:"type:date"`
	CreatedAt         time.Time `json:"created_at"`
}

// ValidTransactionType reports whether t is income or expense
func ValidTransactionType(t string) bool {
	return t == TransactionIncome || t == TransactionExpense
}

// ValidTransactionStatus reports whether s is one of the accepted statuses
func ValidTransactionStatus(s string) bool {
	switch s {
	case TransactionPending, TransactionConfirmed, TransactionScheduled:
		return true
	}
	return false
}
