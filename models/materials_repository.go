package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrMaterialNotFound is returned when a material is not found.
var ErrMaterialNotFound = errors.New("material not found")

// ErrInvalidRestockQty is returned when a restock is requested with a
// non-positive quantity. The stock is left untouched.
var ErrInvalidRestockQty = errors.New("restock quantity must be positive")

type MaterialsRepository struct {
	db *gorm.DB
}

func NewMaterialsRepository(db *gorm.DB) *MaterialsRepository {
	return &MaterialsRepository{
		db: db,
	}
}

// List returns all materials ordered by name, with the supplier preloaded.
func (r *MaterialsRepository) List(ctx context.Context) ([]Material, error) {
	var materials []Material
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		Order("name").
		Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// LowStock returns the materials at or below their reorder point, ordered by
// name. Recomputed on every call.
func (r *MaterialsRepository) LowStock(ctx context.Context) ([]Material, error) {
	var materials []Material
	if err := r.db.WithContext(ctx).
		Where("quantity <= reorder_point").
		Order("name").
		Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *MaterialsRepository) GetByID(ctx context.Context, id uint) (*Material, error) {
	var material Material
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}
	return &material, nil
}

func (r *MaterialsRepository) Create(ctx context.Context, material *Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *MaterialsRepository) Update(ctx context.Context, material *Material) error {
	res := r.db.WithContext(ctx).Model(&Material{ID: material.ID}).Updates(map[string]any{
		"name":           material.Name,
		"quantity":       material.Quantity,
		"unit":           material.Unit,
		"reorder_point":  material.ReorderPoint,
		"supplier_id":    material.SupplierID,
		"price_per_unit": material.PricePerUnit,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMaterialNotFound
	}
	return nil
}

func (r *MaterialsRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Material{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMaterialNotFound
	}
	return nil
}

// Restock adds qty units to a material's stock. The quantity must be
// positive; invalid input is rejected before any mutation.
func (r *MaterialsRepository) Restock(ctx context.Context, id uint, qty float64) (*Material, error) {
	if qty <= 0 {
		return nil, ErrInvalidRestockQty
	}

	var material Material
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&material, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMaterialNotFound
			}
			return err
		}
		material.Quantity += qty
		return tx.Model(&material).Update("quantity", material.Quantity).Error
	})
	if err != nil {
		return nil, err
	}
	return &material, nil
}
