package models

// Supplier represents a vendor that materials can be sourced from.
// Contact and address are free-form and optional.
type Supplier struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Contact string
	Address string
}

func (s *Supplier) TableName() string {
	return "suppliers"
}
