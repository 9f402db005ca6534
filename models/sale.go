package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the header record of one completed checkout. It is immutable once
// written; Total is the sum of its line amounts computed at checkout time.
type Sale struct {
	ID    uint            `gorm:"primaryKey"`
	Date  time.Time       `gorm:"not null"`
	Total decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Items []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

func (s *Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale. Price is the unit price captured at the
// time of sale, not a live reference to the material's current price.
type SaleItem struct {
	ID         uint            `gorm:"primaryKey"`
	SaleID     uint            `gorm:"index;not null"`
	MaterialID uint            `gorm:"index;not null"`
	Qty        float64         `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (i *SaleItem) TableName() string {
	return "sale_items"
}
