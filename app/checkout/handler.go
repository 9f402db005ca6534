package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/buildmart/inventory-pos/app/api"
	"github.com/buildmart/inventory-pos/models"
)

// LineRequest is one cart line as posted by the client. Older POS clients
// send qty/price, newer ones quantity/unit_price; both pairs are accepted and
// normalized into a single models.CartLine before any transaction logic runs.
type LineRequest struct {
	ID        uint     `json:"id"`
	Quantity  *float64 `json:"quantity"`
	Qty       *float64 `json:"qty"`
	UnitPrice *float64 `json:"unit_price"`
	Price     *float64 `json:"price"`
}

// Response is the checkout result. Business failures (empty cart, unknown
// material, insufficient stock) come back as success=false with a message,
// never as a bare HTTP error. On success UpdatedInventory carries the full
// post-checkout stock snapshot so the client can refresh without a re-fetch.
type Response struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message,omitempty"`
	UpdatedInventory []InventoryItem `json:"updated_inventory,omitempty"`
}

type InventoryItem struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	ReorderPoint float64 `json:"reorder_point"`
}

type CheckoutProvider interface {
	Checkout(ctx context.Context, lines []models.CartLine) ([]models.Material, error)
}

type CheckoutHandler struct {
	repo CheckoutProvider
}

func NewCheckoutHandler(r CheckoutProvider) *CheckoutHandler {
	return &CheckoutHandler{
		repo: r,
	}
}

func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req []LineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.JSON(w, http.StatusBadRequest, Response{Success: false, Message: "invalid request body"})
		return
	}

	lines := make([]models.CartLine, len(req))
	for i, l := range req {
		lines[i] = normalize(l)
	}

	inventory, err := h.repo.Checkout(r.Context(), lines)
	if err != nil {
		var notFound *models.MaterialNotFoundError
		var shortStock *models.InsufficientStockError
		switch {
		case errors.Is(err, models.ErrEmptyCart),
			errors.As(err, &notFound),
			errors.As(err, &shortStock):
			api.JSON(w, http.StatusOK, Response{Success: false, Message: err.Error()})
		default:
			api.JSON(w, http.StatusInternalServerError, Response{Success: false, Message: "checkout failed"})
		}
		return
	}

	items := make([]InventoryItem, len(inventory))
	for i, m := range inventory {
		items[i] = InventoryItem{
			ID:           m.ID,
			Name:         m.Name,
			Quantity:     m.Quantity,
			Unit:         m.Unit,
			ReorderPoint: m.ReorderPoint,
		}
	}
	api.JSON(w, http.StatusOK, Response{Success: true, UpdatedInventory: items})
}

func normalize(l LineRequest) models.CartLine {
	qty := 0.0
	switch {
	case l.Quantity != nil:
		qty = *l.Quantity
	case l.Qty != nil:
		qty = *l.Qty
	}

	price := 0.0
	switch {
	case l.UnitPrice != nil:
		price = *l.UnitPrice
	case l.Price != nil:
		price = *l.Price
	}

	return models.CartLine{
		MaterialID: l.ID,
		Qty:        qty,
		UnitPrice:  decimal.NewFromFloat(price),
	}
}
