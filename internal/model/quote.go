package model

import "time"

// Quote status values
const (
	QuoteDraft    = "Rascunho"
	QuotePending  = "Pendente"
	QuoteSent     = "Enviada"
	QuoteApproved = "Aprovada"
	QuoteRejected = "Rejeitada"
)

// Quote represents a price quote, either for a registered client or a
// free-text lead not yet recorded as a Client
type Quote struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	QuoteNumber  string    `json:"quote_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	ClientID     *uint     `json:"client_id" gorm:"index"`
	Client       *Client   `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	LeadName     string    `json:"lead_name" gorm:"type:varchar(100)"`
	LeadContact  string    `json:"lead_contact" gorm:"type:varchar(100)"`
	ItemsSummary string    `json:"items_summary" gorm:"type:text"`
	TotalValue   float64   `json:"total_value" gorm:"type:decimal(10,2);not null"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'Rascunho'"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidQuoteStatus reports whether s is one of the accepted quote statuses
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteDraft, QuotePending, QuoteSent, QuoteApproved, QuoteRejected:
		return true
	}
	return false
}
