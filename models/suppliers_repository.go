package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrSupplierNotFound is returned when a supplier is not found.
var ErrSupplierNotFound = errors.New("supplier not found")

type SuppliersRepository struct {
	db *gorm.DB
}

func NewSuppliersRepository(db *gorm.DB) *SuppliersRepository {
	return &SuppliersRepository{
		db: db,
	}
}

func (r *SuppliersRepository) List(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier
	if err := r.db.WithContext(ctx).Order("name").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *SuppliersRepository) GetByID(ctx context.Context, id uint) (*Supplier, error) {
	var supplier Supplier
	if err := r.db.WithContext(ctx).First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *SuppliersRepository) Create(ctx context.Context, supplier *Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *SuppliersRepository) Update(ctx context.Context, supplier *Supplier) error {
	res := r.db.WithContext(ctx).Model(&Supplier{ID: supplier.ID}).Updates(map[string]any{
		"name":    supplier.Name,
		"contact": supplier.Contact,
		"address": supplier.Address,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// Delete removes a supplier. Materials referencing it keep existing with a
// NULL supplier_id.
func (r *SuppliersRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&Supplier{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSupplierNotFound
		}
		// Explicit for stores where the FK constraint was not created
		// by AutoMigrate (sqlite test databases).
		return tx.Model(&Material{}).
			Where("supplier_id = ?", id).
			Update("supplier_id", nil).Error
	})
}
