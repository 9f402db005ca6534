package materials

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/buildmart/inventory-pos/app/api"
	"github.com/buildmart/inventory-pos/models"
)

// Material is the JSON view of a stocked item. Status is "LOW" once the
// quantity reaches the reorder point, "OK" otherwise.
type Material struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	ReorderPoint float64 `json:"reorder_point"`
	SupplierID   *uint   `json:"supplier_id,omitempty"`
	Supplier     string  `json:"supplier,omitempty"`
	PricePerUnit float64 `json:"price_per_unit"`
	Status       string  `json:"status"`
}

type Request struct {
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	ReorderPoint float64 `json:"reorder_point"`
	SupplierID   *uint   `json:"supplier_id"`
	PricePerUnit float64 `json:"price_per_unit"`
}

type RestockRequest struct {
	Qty float64 `json:"qty"`
}

type MaterialProvider interface {
	List(ctx context.Context) ([]models.Material, error)
	GetByID(ctx context.Context, id uint) (*models.Material, error)
	Create(ctx context.Context, material *models.Material) error
	Update(ctx context.Context, material *models.Material) error
	Delete(ctx context.Context, id uint) error
	Restock(ctx context.Context, id uint, qty float64) (*models.Material, error)
}

type MaterialsHandler struct {
	repo MaterialProvider
}

func NewMaterialsHandler(r MaterialProvider) *MaterialsHandler {
	return &MaterialsHandler{
		repo: r,
	}
}

func (h *MaterialsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to get materials")
		return
	}

	response := make([]Material, len(list))
	for i := range list {
		response[i] = toView(&list[i])
	}
	api.JSON(w, http.StatusOK, response)
}

func (h *MaterialsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	material, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrMaterialNotFound) {
			api.Error(w, http.StatusNotFound, "material not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to get material")
		return
	}
	api.JSON(w, http.StatusOK, toView(material))
}

func (h *MaterialsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	material := fromRequest(req)
	if err := h.repo.Create(r.Context(), material); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to create material")
		return
	}
	api.JSON(w, http.StatusCreated, toView(material))
}

func (h *MaterialsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	material := fromRequest(req)
	material.ID = id
	if err := h.repo.Update(r.Context(), material); err != nil {
		if errors.Is(err, models.ErrMaterialNotFound) {
			api.Error(w, http.StatusNotFound, "material not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to update material")
		return
	}
	api.JSON(w, http.StatusOK, toView(material))
}

func (h *MaterialsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrMaterialNotFound) {
			api.Error(w, http.StatusNotFound, "material not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to delete material")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MaterialsHandler) HandleRestock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req RestockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	material, err := h.repo.Restock(r.Context(), id, req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidRestockQty):
			api.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, models.ErrMaterialNotFound):
			api.Error(w, http.StatusNotFound, "material not found")
		default:
			api.Error(w, http.StatusInternalServerError, "failed to restock material")
		}
		return
	}
	api.JSON(w, http.StatusOK, toView(material))
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid material id")
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

func fromRequest(req *Request) *models.Material {
	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}
	return &models.Material{
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         unit,
		ReorderPoint: req.ReorderPoint,
		SupplierID:   req.SupplierID,
		PricePerUnit: decimal.NewFromFloat(req.PricePerUnit),
	}
}

func toView(m *models.Material) Material {
	status := "OK"
	if m.IsLowStock() {
		status = "LOW"
	}
	view := Material{
		ID:           m.ID,
		Name:         m.Name,
		Quantity:     m.Quantity,
		Unit:         m.Unit,
		ReorderPoint: m.ReorderPoint,
		SupplierID:   m.SupplierID,
		PricePerUnit: m.PricePerUnit.InexactFloat64(),
		Status:       status,
	}
	if m.Supplier != nil {
		view.Supplier = m.Supplier.Name
	}
	return view
}
