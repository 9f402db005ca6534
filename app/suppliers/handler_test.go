package suppliers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmart/inventory-pos/models"
)

// --- Mock Repo ---

type MockSuppliersRepo struct {
	SourceSuppliers []models.Supplier
	Err             error

	created   *models.Supplier
	updated   *models.Supplier
	deletedID uint
}

func (m *MockSuppliersRepo) List(context.Context) ([]models.Supplier, error) {
	return m.SourceSuppliers, m.Err
}

func (m *MockSuppliersRepo) GetByID(_ context.Context, id uint) (*models.Supplier, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.SourceSuppliers {
		if m.SourceSuppliers[i].ID == id {
			return &m.SourceSuppliers[i], nil
		}
	}
	return nil, models.ErrSupplierNotFound
}

func (m *MockSuppliersRepo) Create(_ context.Context, supplier *models.Supplier) error {
	if m.Err != nil {
		return m.Err
	}
	supplier.ID = 1
	m.created = supplier
	return nil
}

func (m *MockSuppliersRepo) Update(_ context.Context, supplier *models.Supplier) error {
	m.updated = supplier
	return m.Err
}

func (m *MockSuppliersRepo) Delete(_ context.Context, id uint) error {
	m.deletedID = id
	return m.Err
}

func newTestRouter(repo SupplierProvider) http.Handler {
	h := NewSuppliersHandler(repo)
	r := chi.NewRouter()
	r.Get("/suppliers", h.HandleList)
	r.Post("/suppliers", h.HandleCreate)
	r.Put("/suppliers/{id}", h.HandleUpdate)
	r.Delete("/suppliers/{id}", h.HandleDelete)
	return r
}

// --- Tests ---

func TestHandleList(t *testing.T) {
	repo := &MockSuppliersRepo{SourceSuppliers: []models.Supplier{
		{ID: 1, Name: "123 Construction Corp", Contact: "0917-555-0101"},
		{ID: 2, Name: "Steelworks Inc", Address: "Quezon City"},
	}}
	rec := httptest.NewRecorder()
	newTestRouter(repo).ServeHTTP(rec, httptest.NewRequest("GET", "/suppliers", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []Supplier
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "123 Construction Corp", resp[0].Name)
	assert.Equal(t, "Quezon City", resp[1].Address)
}

func TestHandleListError(t *testing.T) {
	repo := &MockSuppliersRepo{Err: errors.New("db down")}
	rec := httptest.NewRecorder()
	newTestRouter(repo).ServeHTTP(rec, httptest.NewRequest("GET", "/suppliers", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		expectedStatusCode int
		checkRepo          func(t *testing.T, repo *MockSuppliersRepo)
	}{
		{
			name:               "Success",
			body:               `{"name":"Steelworks Inc","contact":"steel@example.com","address":"Quezon City"}`,
			expectedStatusCode: http.StatusCreated,
			checkRepo: func(t *testing.T, repo *MockSuppliersRepo) {
				require.NotNil(t, repo.created)
				assert.Equal(t, "Steelworks Inc", repo.created.Name)
				assert.Equal(t, "Quezon City", repo.created.Address)
			},
		},
		{
			name:               "Missing name",
			body:               `{"contact":"x"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Malformed body",
			body:               `{`,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockSuppliersRepo{}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/suppliers", strings.NewReader(tc.body))
			newTestRouter(repo).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkRepo != nil {
				tc.checkRepo(t, repo)
			}
		})
	}
}

func TestHandleUpdate(t *testing.T) {
	repo := &MockSuppliersRepo{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/suppliers/4", strings.NewReader(`{"name":"Renamed Corp"}`))
	newTestRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.updated)
	assert.Equal(t, uint(4), repo.updated.ID)
	assert.Equal(t, "Renamed Corp", repo.updated.Name)
}

func TestHandleUpdateNotFound(t *testing.T) {
	repo := &MockSuppliersRepo{Err: models.ErrSupplierNotFound}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/suppliers/9", strings.NewReader(`{"name":"Ghost"}`))
	newTestRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDelete(t *testing.T) {
	testCases := []struct {
		name               string
		url                string
		repoErr            error
		expectedStatusCode int
	}{
		{"Success", "/suppliers/2", nil, http.StatusNoContent},
		{"Not found", "/suppliers/9", models.ErrSupplierNotFound, http.StatusNotFound},
		{"Bad id", "/suppliers/xyz", nil, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockSuppliersRepo{Err: tc.repoErr}
			rec := httptest.NewRecorder()
			newTestRouter(repo).ServeHTTP(rec, httptest.NewRequest("DELETE", tc.url, nil))
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}
