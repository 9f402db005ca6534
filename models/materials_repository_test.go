package models

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowStock(t *testing.T) {
	testCases := []struct {
		name      string
		materials []Material
		expected  []string
	}{
		{
			name:     "empty inventory",
			expected: []string{},
		},
		{
			name: "mixed stock levels",
			materials: []Material{
				{Name: "Sand", Quantity: 10, ReorderPoint: 50},
				{Name: "Cement", Quantity: 900, ReorderPoint: 100},
				{Name: "Gravel", Quantity: 100, ReorderPoint: 100}, // boundary: equal counts as low
			},
			expected: []string{"Gravel", "Sand"},
		},
		{
			name: "insertion order does not matter",
			materials: []Material{
				{Name: "Zinc Sheets", Quantity: 5, ReorderPoint: 20},
				{Name: "Plywood", Quantity: 2, ReorderPoint: 20},
				{Name: "Nails", Quantity: 999, ReorderPoint: 20},
			},
			expected: []string{"Plywood", "Zinc Sheets"},
		},
		{
			name: "nothing low",
			materials: []Material{
				{Name: "Cement", Quantity: 900, ReorderPoint: 100},
			},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			for i := range tc.materials {
				require.NoError(t, db.Create(&tc.materials[i]).Error)
			}
			repo := NewMaterialsRepository(db)

			low, err := repo.LowStock(context.Background())
			require.NoError(t, err)

			names := make([]string, len(low))
			for i, m := range low {
				names[i] = m.Name
			}
			assert.Equal(t, tc.expected, names, "low stock must be exactly quantity <= reorder_point, ordered by name")
		})
	}
}

func TestDepletionDays(t *testing.T) {
	testCases := []struct {
		name     string
		quantity float64
		expected float64
	}{
		{"zero stock", 0, 0},
		{"negative stock", -3, 0},
		{"one day left", 5, 1},
		{"rounds to one decimal", 12, 2.4},
		{"sub-day stock", 2, 0.4},
		{"large stock", 585, 117},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Material{Quantity: tc.quantity}
			assert.Equal(t, tc.expected, m.DepletionDays())
		})
	}
}

func TestDepletionDaysMonotone(t *testing.T) {
	prev := 0.0
	for qty := -10.0; qty <= 200; qty += 7 {
		m := Material{Quantity: qty}
		days := m.DepletionDays()
		assert.GreaterOrEqual(t, days, prev, "estimate must not decrease as quantity grows (qty=%g)", qty)
		assert.GreaterOrEqual(t, days, 0.0)
		prev = days
	}
}

func TestRestock(t *testing.T) {
	db := newTestDB(t)
	m := seedMaterial(t, db, "Cement", 100)
	repo := NewMaterialsRepository(db)

	updated, err := repo.Restock(context.Background(), m.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Quantity)
	assert.Equal(t, 150.0, materialQty(t, db, m.ID))
}

func TestRestockRejectsInvalidQty(t *testing.T) {
	db := newTestDB(t)
	m := seedMaterial(t, db, "Cement", 100)
	repo := NewMaterialsRepository(db)

	for _, qty := range []float64{0, -5} {
		_, err := repo.Restock(context.Background(), m.ID, qty)
		assert.ErrorIs(t, err, ErrInvalidRestockQty)
	}
	assert.Equal(t, 100.0, materialQty(t, db, m.ID), "invalid restock must not mutate stock")
}

func TestRestockUnknownMaterial(t *testing.T) {
	db := newTestDB(t)
	repo := NewMaterialsRepository(db)

	_, err := repo.Restock(context.Background(), 42, 10)
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestMaterialsCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewMaterialsRepository(db)
	ctx := context.Background()

	material := &Material{
		Name:         "Rebar 10mm",
		Quantity:     200,
		Unit:         "pcs",
		ReorderPoint: 50,
		PricePerUnit: decimal.NewFromFloat(185.50),
	}
	require.NoError(t, repo.Create(ctx, material))
	require.NotZero(t, material.ID)

	got, err := repo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rebar 10mm", got.Name)
	assert.True(t, got.PricePerUnit.Equal(decimal.NewFromFloat(185.50)))

	got.Name = "Rebar 12mm"
	got.Quantity = 180
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rebar 12mm", updated.Name)
	assert.Equal(t, 180.0, updated.Quantity)

	require.NoError(t, repo.Delete(ctx, material.ID))
	_, err = repo.GetByID(ctx, material.ID)
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestMaterialsUpdateUnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := NewMaterialsRepository(db)

	err := repo.Update(context.Background(), &Material{ID: 77, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestMaterialsListOrderedByName(t *testing.T) {
	db := newTestDB(t)
	seedMaterial(t, db, "Sand", 10)
	seedMaterial(t, db, "Cement", 20)
	repo := NewMaterialsRepository(db)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Cement", list[0].Name)
	assert.Equal(t, "Sand", list[1].Name)
}
