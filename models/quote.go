package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kendall-kelly/blinds-quote-api/pricing"
	"gorm.io/gorm"
)

// Accessory defaults applied when a quote line omits them
const (
	DefaultChainOrientation = "Derecha"
	DefaultFasciaType       = "Redonda"
	DefaultFasciaColor      = "Blanca"
)

// Quote is a priced proposal for a set of blind installations
type Quote struct {
	ID          string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Items       []QuoteItem `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"items"`
	Total       float64     `gorm:"not null" json:"total"`
	ClientType  string      `gorm:"not null" json:"client_type"` // distributor or client
	ClientName  *string     `json:"client_name"`
	ClientPhone *string     `json:"client_phone"`
	ClientEmail *string     `json:"client_email"`
	Notes       *string     `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// BeforeCreate assigns a UUID and keeps the total in line with the items
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	q.RecomputeTotal()
	return nil
}

// RecomputeTotal sets Total to the rounded sum of the stored item subtotals
func (q *Quote) RecomputeTotal() {
	subtotals := make([]float64, 0, len(q.Items))
	for _, item := range q.Items {
		subtotals = append(subtotals, item.Subtotal)
	}
	q.Total = pricing.Total(subtotals)
}

// Folio is the short upper-case reference printed on documents
func (q *Quote) Folio() string {
	return upperPrefix(q.ID, 8)
}

// FilePrefix is the lower-case id prefix used in document filenames
func (q *Quote) FilePrefix() string {
	if len(q.ID) < 8 {
		return q.ID
	}
	return q.ID[:8]
}

// QuoteItem is one blind in a quote. ProductID is a weak reference: the
// product may change or disappear after the quote is recorded.
type QuoteItem struct {
	ID                uint    `gorm:"primaryKey" json:"-"`
	QuoteID           string  `gorm:"type:varchar(36);not null;index" json:"-"`
	Position          int     `gorm:"not null" json:"-"`
	ProductID         string  `gorm:"not null" json:"product_id"`
	ProductName       string  `gorm:"not null" json:"product_name"`
	Color             *string `json:"color"`
	Width             float64 `gorm:"not null" json:"width"`  // meters
	Height            float64 `gorm:"not null" json:"height"` // meters
	SquareMeters      float64 `gorm:"not null" json:"square_meters"`
	UnitPrice         float64 `gorm:"not null" json:"unit_price"` // rate at creation time
	Subtotal          float64 `gorm:"not null" json:"subtotal"`
	ChainOrientation  string  `gorm:"not null;default:'Derecha'" json:"chain_orientation"` // Izquierda or Derecha
	FasciaType        string  `gorm:"not null;default:'Redonda'" json:"fascia_type"`       // Redonda, Cuadrada sin forrar, Cuadrada forrada
	FasciaColor       string  `gorm:"not null;default:'Blanca'" json:"fascia_color"`
	FasciaPrice       float64 `gorm:"not null;default:0" json:"fascia_price"`
	InstallationPrice float64 `gorm:"not null;default:0" json:"installation_price"`
}

// TableName specifies the table name for the QuoteItem model
func (QuoteItem) TableName() string {
	return "quote_items"
}

// LineInput returns the pricing input of the item priced at unitPrice
func (i QuoteItem) LineInput(unitPrice float64) pricing.LineInput {
	return pricing.LineInput{
		Width:             i.Width,
		Height:            i.Height,
		UnitPrice:         unitPrice,
		FasciaPrice:       i.FasciaPrice,
		InstallationPrice: i.InstallationPrice,
	}
}
