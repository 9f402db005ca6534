package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrEmptyCart is returned when a checkout is attempted with no cart lines.
// No sale record is created.
var ErrEmptyCart = errors.New("cart is empty")

// MaterialNotFoundError reports a cart line referencing an unknown material.
type MaterialNotFoundError struct {
	ID uint
}

func (e *MaterialNotFoundError) Error() string {
	return fmt.Sprintf("material %d not found", e.ID)
}

// InsufficientStockError reports a cart line requesting more than is in
// stock. Available is the quantity on hand at the time of the attempt.
type InsufficientStockError struct {
	Name      string
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %g available", e.Name, e.Available)
}

// CartLine is one normalized line of a checkout cart. Handlers are expected
// to resolve any aliased form fields before the line reaches the repository.
type CartLine struct {
	MaterialID uint
	Qty        float64
	UnitPrice  decimal.Decimal
}

type SalesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{
		db: db,
	}
}

// Checkout atomically applies a cart against current inventory: it validates
// each line in input order, decrements stock, and records a Sale with one
// SaleItem per line capturing the unit price at the time of sale.
//
// The sale header is created before line validation, but inside the same
// transaction, so any failure rolls back the header along with every staged
// item and decrement. Materials are loaded with row locks where the dialect
// supports them, so concurrent checkouts cannot oversell the same material.
//
// On success it returns the full inventory snapshot ordered by name, saving
// the caller a separate re-fetch.
func (r *SalesRepository) Checkout(ctx context.Context, lines []CartLine) ([]Material, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sale := Sale{Date: time.Now(), Total: decimal.Zero}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, line := range lines {
			q := tx
			if tx.Dialector.Name() != "sqlite" {
				// sqlite serializes writers on its own and rejects
				// FOR UPDATE syntax.
				q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}

			var material Material
			if err := q.First(&material, line.MaterialID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &MaterialNotFoundError{ID: line.MaterialID}
				}
				return err
			}

			if material.Quantity < line.Qty {
				return &InsufficientStockError{
					Name:      material.Name,
					Available: material.Quantity,
				}
			}

			material.Quantity -= line.Qty
			if material.Quantity < 0 {
				// Unreachable after the check above; kept as a floor so a
				// stale read can never persist negative stock.
				material.Quantity = 0
			}
			if err := tx.Model(&Material{ID: material.ID}).
				Update("quantity", material.Quantity).Error; err != nil {
				return err
			}

			item := SaleItem{
				SaleID:     sale.ID,
				MaterialID: material.ID,
				Qty:        line.Qty,
				Price:      line.UnitPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			total = total.Add(line.UnitPrice.Mul(decimal.NewFromFloat(line.Qty)))
		}

		return tx.Model(&Sale{ID: sale.ID}).Update("total", total).Error
	})
	if err != nil {
		return nil, err
	}

	var inventory []Material
	if err := r.db.WithContext(ctx).Order("name").Find(&inventory).Error; err != nil {
		return nil, err
	}
	return inventory, nil
}

// ListSales returns the sales history, newest first, with line items
// preloaded.
func (r *SalesRepository) ListSales(ctx context.Context) ([]Sale, error) {
	var sales []Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("date DESC, id DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
