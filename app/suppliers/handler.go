package suppliers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/buildmart/inventory-pos/app/api"
	"github.com/buildmart/inventory-pos/models"
)

type Supplier struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Address string `json:"address,omitempty"`
}

type Request struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

type SupplierProvider interface {
	List(ctx context.Context) ([]models.Supplier, error)
	Create(ctx context.Context, supplier *models.Supplier) error
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id uint) error
}

type SuppliersHandler struct {
	repo SupplierProvider
}

func NewSuppliersHandler(r SupplierProvider) *SuppliersHandler {
	return &SuppliersHandler{
		repo: r,
	}
}

func (h *SuppliersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to get suppliers")
		return
	}

	response := make([]Supplier, len(list))
	for i, s := range list {
		response[i] = toView(&s)
	}
	api.JSON(w, http.StatusOK, response)
}

func (h *SuppliersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	supplier := &models.Supplier{
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
	}
	if err := h.repo.Create(r.Context(), supplier); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to create supplier")
		return
	}
	api.JSON(w, http.StatusCreated, toView(supplier))
}

func (h *SuppliersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	supplier := &models.Supplier{
		ID:      id,
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
	}
	if err := h.repo.Update(r.Context(), supplier); err != nil {
		if errors.Is(err, models.ErrSupplierNotFound) {
			api.Error(w, http.StatusNotFound, "supplier not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to update supplier")
		return
	}
	api.JSON(w, http.StatusOK, toView(supplier))
}

func (h *SuppliersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrSupplierNotFound) {
			api.Error(w, http.StatusNotFound, "supplier not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to delete supplier")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid supplier id")
		return 0, false
	}
	return uint(id), true
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*Request, bool) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if req.Name == "" {
		api.Error(w, http.StatusBadRequest, "name is required")
		return nil, false
	}
	return &req, true
}

func toView(s *models.Supplier) Supplier {
	return Supplier{
		ID:      s.ID,
		Name:    s.Name,
		Contact: s.Contact,
		Address: s.Address,
	}
}
