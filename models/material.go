package models

import (
	"math"

	"github.com/shopspring/decimal"
)

// dailyUsageRate is the assumed consumption per material in units/day used by
// the depletion estimate. It is a fixed placeholder, not derived from sales
// history.
const dailyUsageRate = 5.0

// Material represents a stocked item. Quantity is the authoritative stock
// level; a material is considered low on stock once quantity drops to its
// reorder point. The supplier reference is optional and survives supplier
// deletion as NULL.
type Material struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	Quantity     float64 `gorm:"not null;default:0"`
	Unit         string  `gorm:"default:pcs"`
	ReorderPoint float64 `gorm:"not null;default:0"`
	SupplierID   *uint
	Supplier     *Supplier       `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
}

func (m *Material) TableName() string {
	return "materials"
}

// IsLowStock reports whether the material is at or below its reorder point.
func (m *Material) IsLowStock() bool {
	return m.Quantity <= m.ReorderPoint
}

// DepletionDays estimates how many days remain before the stock runs out,
// assuming the fixed daily usage rate, rounded to one decimal. Returns 0 for
// empty or negative stock.
func (m *Material) DepletionDays() float64 {
	if m.Quantity <= 0 {
		return 0
	}
	return math.Round(m.Quantity/dailyUsageRate*10) / 10
}
