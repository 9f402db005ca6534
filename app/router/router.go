package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/buildmart/inventory-pos/app/api"
	"github.com/buildmart/inventory-pos/app/checkout"
	"github.com/buildmart/inventory-pos/app/materials"
	"github.com/buildmart/inventory-pos/app/notifications"
	"github.com/buildmart/inventory-pos/app/sales"
	"github.com/buildmart/inventory-pos/app/suppliers"
	"github.com/buildmart/inventory-pos/models"
)

// NewRouter wires repositories, handlers and middleware into the service mux.
func NewRouter(log *slog.Logger, db *gorm.DB) http.Handler {
	materialsHandler := materials.NewMaterialsHandler(models.NewMaterialsRepository(db))
	suppliersHandler := suppliers.NewSuppliersHandler(models.NewSuppliersRepository(db))
	salesRepo := models.NewSalesRepository(db)
	salesHandler := sales.NewSalesHandler(salesRepo)
	checkoutHandler := checkout.NewCheckoutHandler(salesRepo)
	notificationsHandler := notifications.NewNotificationsHandler(models.NewMaterialsRepository(db))

	r := chi.NewRouter()
	r.Use(api.Metrics)
	r.Use(api.RequestLogger(log))
	r.Use(api.Recovery(log))

	r.Route("/api", func(r chi.Router) {
		r.Route("/materials", func(r chi.Router) {
			r.Get("/", materialsHandler.HandleList)
			r.Post("/", materialsHandler.HandleCreate)
			r.Get("/{id}", materialsHandler.HandleGet)
			r.Put("/{id}", materialsHandler.HandleUpdate)
			r.Delete("/{id}", materialsHandler.HandleDelete)
			r.Post("/{id}/restock", materialsHandler.HandleRestock)
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", suppliersHandler.HandleList)
			r.Post("/", suppliersHandler.HandleCreate)
			r.Put("/{id}", suppliersHandler.HandleUpdate)
			r.Delete("/{id}", suppliersHandler.HandleDelete)
		})

		r.Post("/checkout", checkoutHandler.HandleCheckout)

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", salesHandler.HandleList)
			r.Get("/export", salesHandler.HandleExportCSV)
			r.Get("/export.xlsx", salesHandler.HandleExportXLSX)
		})

		r.Get("/notifications", notificationsHandler.HandleList)
	})

	r.Handle("/metrics", api.MetricsHandler())
	r.Get("/healthz", healthz(db))

	return r
}

func healthz(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			api.Error(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
