package sales

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/buildmart/inventory-pos/app/api"
	"github.com/buildmart/inventory-pos/models"
)

// dateLayout is the export format for sale timestamps.
const dateLayout = "2006-01-02 15:04:05"

type Sale struct {
	ID    uint       `json:"id"`
	Date  string     `json:"date"`
	Total float64    `json:"total"`
	Items []SaleItem `json:"items"`
}

type SaleItem struct {
	MaterialID uint    `json:"material_id"`
	Qty        float64 `json:"qty"`
	Price      float64 `json:"price"`
}

type SalesProvider interface {
	ListSales(ctx context.Context) ([]models.Sale, error)
}

type SalesHandler struct {
	repo SalesProvider
}

func NewSalesHandler(r SalesProvider) *SalesHandler {
	return &SalesHandler{
		repo: r,
	}
}

func (h *SalesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListSales(r.Context())
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to get sales")
		return
	}

	response := make([]Sale, len(list))
	for i, s := range list {
		items := make([]SaleItem, len(s.Items))
		for j, it := range s.Items {
			items[j] = SaleItem{
				MaterialID: it.MaterialID,
				Qty:        it.Qty,
				Price:      it.Price.InexactFloat64(),
			}
		}
		response[i] = Sale{
			ID:    s.ID,
			Date:  s.Date.Format(dateLayout),
			Total: s.Total.InexactFloat64(),
			Items: items,
		}
	}
	api.JSON(w, http.StatusOK, response)
}

// HandleExportCSV streams the sales history as CSV with the columns
// Sale ID, Date, Total.
func (h *SalesHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListSales(r.Context())
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to export sales")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"Sale ID", "Date", "Total"}) //nolint:errcheck
	for _, s := range list {
		cw.Write([]string{ //nolint:errcheck
			fmt.Sprintf("%d", s.ID),
			s.Date.Format(dateLayout),
			s.Total.StringFixed(2),
		})
	}
	cw.Flush()
}

// HandleExportXLSX writes the same report as a spreadsheet.
func (h *SalesHandler) HandleExportXLSX(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListSales(r.Context())
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to export sales")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	_ = f.SetCellValue(sheet, "A1", "Sale ID")
	_ = f.SetCellValue(sheet, "B1", "Date")
	_ = f.SetCellValue(sheet, "C1", "Total")
	for i, s := range list {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), s.ID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.Date.Format(dateLayout))
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.Total.InexactFloat64())
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="sales.xlsx"`)
	if err := f.Write(w); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to write spreadsheet")
	}
}
