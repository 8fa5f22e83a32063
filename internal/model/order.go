package model

import "time"

// Order production stages, in production sequence
const (
	StageAwaiting  = "Aguardando"
	StageCutting   = "Corte"
	StagePrinting  = "Estampa"
	StageSewing    = "Costura"
	StageFinishing = "Acabamento"
	StageQuality   = "Qualidade"
	StageDone      = "Concluído"
)

// Order priorities
const (
	PriorityNormal = "Normal"
	PriorityHigh   = "Alta"
	PriorityUrgent = "Urgente"
)

// ProductionStages are the stages counted as "in production" by the
// dashboard. Awaiting, quality check and done are excluded.
var ProductionStages = []string{StageCutting, StagePrinting, StageSewing, StageFinishing}

// Order represents a confirmed production order for a client
type Order struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	OrderNumber  string     `json:"order_number" gorm:"type:varchar(50);uniqueIndex;not null"`
	QuoteID      *uint      `json:"quote_id" gorm:"index"`
	Quote        *Quote     `json:"quote,omitempty" gorm:"foreignKey:QuoteID"`
	ClientID     uint       `json:"client_id" gorm:"index;not null"`
	Client       Client     `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	ItemsSummary string     `json:"items_summary" gorm:"type:text"`
	TotalValue   float64    `json:"total_value" gorm:"type:decimal(10,2);not null"`
	DeliveryDate *time.Time `json:"delivery_date" gorm:"type:date"`
	Stage        string     `json:"stage" gorm:"type:varchar(30);default:'Aguardando'"`
	Progress     int        `json:"progress" gorm:"default:0"`
	Priority     string     `json:"priority" gorm:"type:varchar(20);default:'Normal'"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ValidOrderStage reports whether s is one of the accepted production stages
func ValidOrderStage(s string) bool {
	switch s {
	case StageAwaiting, StageCutting, StagePrinting, StageSewing, StageFinishing, StageQuality, StageDone:
		return true
	}
	return false
}

// ValidOrderPriority reports whether p is one of the accepted priorities
func ValidOrderPriority(p string) bool {
	switch p {
	case PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
