// Package serializer maps stored records to the external response
// shapes consumed by the front end: camelCase fields, DD/MM/YYYY dates,
// and cross-entity references resolved (an order carries its client's
// name, a quote prefers the linked client over the free-text lead).
package serializer

import (
	"time"

	"emunah-backend/internal/model"
)

// DateLayout is the display format for dates
const DateLayout = "02/01/2006"

// ClientView is the external shape of a Client
type ClientView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
}

// Client maps a Client record to its external shape
func Client(c *model.Client) ClientView {
	return ClientView{
		ID:        c.ID,
		Name:      c.Name,
		Contact:   c.Contact,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.Format(DateLayout),
	}
}

// Clients maps a list of Client records
func Clients(records []model.Client) []ClientView {
	views := make([]ClientView, 0, len(records))
	for i := range records {
		views = append(views, Client(&records[i]))
	}
	return views
}

// SupplierView is the external shape of a Supplier
type SupplierView struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	Contact            string `json:"contact"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Category           string `json:"category"`
	Status             string `json:"status"`
	Rating             int    `json:"rating"`
	ProductionTimeDays int    `json:"productionTimeDays"`
}

// Supplier maps a Supplier record to its external shape
func Supplier(s *model.Supplier) SupplierView {
	return SupplierView{
		ID:                 s.ID,
		Name:               s.Name,
		Contact:            s.Contact,
		Email:              s.Email,
		Phone:              s.Phone,
		Category:           s.Category,
		Status:             s.Status,
		Rating:             s.Rating,
		ProductionTimeDays: s.ProductionTimeDays,
	}
}

// Suppliers maps a list of Supplier records
func Suppliers(records []model.Supplier) []SupplierView {
	views := make([]SupplierView, 0, len(records))
	for i := range records {
		views = append(views, Supplier(&records[i]))
	}
	return views
}

// ProductView is the external shape of a Product
type ProductView struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	SKU      string   `json:"sku"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Cost     float64  `json:"cost"`
	Stock    int      `json:"stock"`
	Colors   []string `json:"colors"`
	Sizes    []string `json:"sizes"`
}

// Product maps a Product record to its external shape
func Product(p *model.Product) ProductView {
	return ProductView{
		ID:       p.ID,
		Name:     p.Name,
		SKU:      p.SKU,
		Category: p.Category,
		Price:    p.Price,
		Cost:     p.Cost,
		Stock:    p.Stock,
		Colors:   p.Colors,
		Sizes:    p.Sizes,
	}
}

// Products maps a list of Product records
func Products(records []model.Product) []ProductView {
	views := make([]ProductView, 0, len(records))
	for i := range records {
		views = append(views, Product(&records[i]))
	}
	return views
}

// PrintView is the external shape of a Print
type PrintView struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Technique string   `json:"technique"`
	Colors    string   `json:"colors"`
	ImageURL  string   `json:"imageUrl"`
	ImageType string   `json:"imageType"`
	Tags      []string `json:"tags"`
}

// Print maps a Print record to its external shape
func Print(p *model.Print) PrintView {
	return PrintView{
		ID:        p.ID,
		Name:      p.Name,
		Technique: p.Technique,
		Colors:    p.Colors,
		ImageURL:  p.ImageURL,
		ImageType: p.ImageType,
		Tags:      p.Tags,
	}
}

// Prints maps a list of Print records
func Prints(records []model.Print) []PrintView {
	views := make([]PrintView, 0, len(records))
	for i := range records {
		views = append(views, Print(&records[i]))
	}
	return views
}

// QuoteView is the external shape of a Quote
type QuoteView struct {
	ID           uint    `json:"id"`
	QuoteNumber  string  `json:"quoteNumber"`
	ClientID     *uint   `json:"clientId"`
	ClientName   string  `json:"clientName"`
	Contact      string  `json:"contact"`
	ItemsSummary string  `json:"itemsSummary"`
	TotalValue   float64 `json:"totalValue"`
	Status       string  `json:"status"`
	Date         string  `json:"date"`
}

// Quote maps a Quote record to its external shape. The linked client,
// when present, takes precedence over the free-text lead fields.
func Quote(q *model.Quote) QuoteView {
	name := q.LeadName
	contact := q.LeadContact
	if q.Client != nil {
		name = q.Client.Name
		contact = q.Client.Contact
	}
	return QuoteView{
		ID:           q.ID,
		QuoteNumber:  q.QuoteNumber,
		ClientID:     q.ClientID,
		ClientName:   name,
		Contact:      contact,
		ItemsSummary: q.ItemsSummary,
		TotalValue:   q.TotalValue,
		Status:       q.Status,
		Date:         q.CreatedAt.Format(DateLayout),
	}
}

// Quotes maps a list of Quote records
func Quotes(records []model.Quote) []QuoteView {
	views := make([]QuoteView, 0, len(records))
	for i := range records {
		views = append(views, Quote(&records[i]))
	}
	return views
}

// OrderView is the external shape of an Order. DeliveryDate is null
// when the order has no delivery date; the creation date is always set.
type OrderView struct {
	ID           uint    `json:"id"`
	OrderNumber  string  `json:"orderNumber"`
	ClientName   string  `json:"clientName"`
	ItemsSummary string  `json:"itemsSummary"`
	TotalValue   float64 `json:"totalValue"`
	DeliveryDate *string `json:"deliveryDate"`
	Stage        string  `json:"stage"`
	Progress     int     `json:"progress"`
	Priority     string  `json:"priority"`
	Date         string  `json:"date"`
}

// Order maps an Order record to its external shape
func Order(o *model.Order) OrderView {
	var delivery *string
	if o.DeliveryDate != nil {
		d := o.DeliveryDate.Format(DateLayout)
		delivery = &d
	}
	return OrderView{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		ClientName:   o.Client.Name,
		ItemsSummary: o.ItemsSummary,
		TotalValue:   o.TotalValue,
		DeliveryDate: delivery,
		Stage:        o.Stage,
		Progress:     o.Progress,
		Priority:     o.Priority,
		Date:         o.CreatedAt.Format(DateLayout),
	}
}

// Orders maps a list of Order records
func Orders(records []model.Order) []OrderView {
	views := make([]OrderView, 0, len(records))
	for i := range records {
		views = append(views, Order(&records[i]))
	}
	return views
}

// TransactionView is the external shape of a Transaction
type TransactionView struct {
	ID                uint    `json:"id"`
	TransactionNumber string  `json:"transactionNumber"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Type              string  `json:"type"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	Date              string  `json:"date"`
}

// Transaction maps a Transaction record to its external shape
func Transaction(t *model.Transaction) TransactionView {
	return TransactionView{
		ID:                t.ID,
		TransactionNumber: t.TransactionNumber,
		Description:       t.Description,
		Category:          t.Category,
		Type:              t.Type,
		Amount:            t.Amount,
		Status:            t.Status,
		Date:              t.TransactionDate.Format(DateLayout),
	}
}

// Transactions maps a list of Transaction records
func Transactions(records []model.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(records))
	for i := range records {
		views = append(views, Transaction(&records[i]))
	}
	return views
}

// FormatDate renders t in the display format
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
