// Package numbering issues the human-facing business identifiers
// (quote, order and transaction numbers). Issuance is serialized per
// kind: the candidate is derived from the highest existing internal id,
// probed for uniqueness, bumped on collision, and the record insert
// runs while the kind's lock is still held. The unique column index is
// the final backstop.
package numbering

import (
	"fmt"
	"sync"

	"emunah-backend/internal/model"
	"emunah-backend/prometheus"

	"gorm.io/gorm"
)

// Kind identifies a business-number sequence
type Kind string

const (
	KindQuote       Kind = "quote"
	KindOrder       Kind = "order"
	KindTransaction Kind = "transaction"
)

// Generator issues unique business numbers, one lock per kind
type Generator struct {
	quoteMu sync.Mutex
	orderMu sync.Mutex
	trxMu   sync.Mutex
}

// NewGenerator creates a Generator
func NewGenerator() *Generator {
	return &Generator{}
}

// IssueQuoteNumber computes the next quote number (COT-2024-NNN, from
// max id + 1) and runs create with the quote lock held.
func (g *Generator) IssueQuoteNumber(db *gorm.DB, create func(number string) error) (string, error) {
	g.quoteMu.Lock()
	defer g.quoteMu.Unlock()
	return issue(db, KindQuote, &model.Quote{}, "quote_number", func(maxID int64) int64 {
		return maxID + 1
	}, func(n int64) string {
		return fmt.Sprintf("COT-2024-%03d", n)
	}, create)
}

// IssueOrderNumber computes the next order number (PED-<1024+max id>)
// and runs create with the order lock held.
func (g *Generator) IssueOrderNumber(db *gorm.DB, create func(number string) error) (string, error) {
	g.orderMu.Lock()
	defer g.orderMu.Unlock()
	return issue(db, KindOrder, &model.Order{}, "order_number", func(maxID int64) int64 {
		return maxID
	}, func(n int64) string {
		return fmt.Sprintf("PED-%d", 1024+n)
	}, create)
}

// IssueTransactionNumber computes the next transaction number
// (TRX-<9800+max id>) and runs create with the transaction lock held.
func (g *Generator) IssueTransactionNumber(db *gorm.DB, create func(number string) error) (string, error) {
	g.trxMu.Lock()
	defer g.trxMu.Unlock()
	return issue(db, KindTransaction, &model.Transaction{}, "transaction_number", func(maxID int64) int64 {
		return maxID
	}, func(n int64) string {
		return fmt.Sprintf("TRX-%d", 9800+n)
	}, create)
}

// issue derives the candidate from the highest internal id, probes the
// unique column and bumps the counter until the candidate is free, then
// hands the number to create. Caller must hold the kind's lock.
func issue(db *gorm.DB, kind Kind, entity interface{}, column string, start func(maxID int64) int64, format func(n int64) string, create func(number string) error) (string, error) {
	var maxID int64
	if err := db.Model(entity).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return "", err
	}

	n := start(maxID)
	number := format(n)
	for {
		var count int64
		if err := db.Model(entity).Where(column+" = ?", number).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			break
		}
		// The id arithmetic assumes contiguous, never-deleted ids;
		// bump until the candidate is free so a gap can never produce
		// a duplicate number.
		prometheus.RecordNumberingRetry(string(kind))
		n++
		number = format(n)
	}

	if create != nil {
		if err := create(number); err != nil {
			return "", err
		}
	}

	prometheus.RecordNumberIssued(string(kind))
	return number, nil
}
