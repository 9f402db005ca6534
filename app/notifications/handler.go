package notifications

import (
	"context"
	"net/http"

	"github.com/buildmart/inventory-pos/app/api"
	"github.com/buildmart/inventory-pos/models"
)

// Notification is one low-stock alert with a rough estimate of how many days
// of stock remain at the assumed usage rate.
type Notification struct {
	MaterialID    uint    `json:"material_id"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	ReorderPoint  float64 `json:"reorder_point"`
	DepletionDays float64 `json:"depletion_days"`
}

type LowStockProvider interface {
	LowStock(ctx context.Context) ([]models.Material, error)
}

type NotificationsHandler struct {
	repo LowStockProvider
}

func NewNotificationsHandler(r LowStockProvider) *NotificationsHandler {
	return &NotificationsHandler{
		repo: r,
	}
}

func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.LowStock(r.Context())
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to get notifications")
		return
	}

	response := make([]Notification, len(list))
	for i, m := range list {
		response[i] = Notification{
			MaterialID:    m.ID,
			Name:          m.Name,
			Quantity:      m.Quantity,
			Unit:          m.Unit,
			ReorderPoint:  m.ReorderPoint,
			DepletionDays: m.DepletionDays(),
		}
	}
	api.JSON(w, http.StatusOK, response)
}
