package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/apierror"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/dto"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/export"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/middleware"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/service"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/worker"

	"github.com/gin-gonic/gin"
)

const (
	ReportInventory    = "inventory"
	ReportLowStock     = "low-stock"
	ReportValue        = "value"
	ReportTransactions = "transactions"
)

var exportMIME = map[string]string{
	"csv":  "text/csv",
	"pdf":  "application/pdf",
	"txt":  "text/plain",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type ReportsHandler struct {
	inventory    service.InventoryService
	transactions service.TransactionService
	dispatcher   *worker.Dispatcher
}

func NewReportsHandler(inv service.InventoryService, txs service.TransactionService, dispatcher *worker.Dispatcher) *ReportsHandler {
	return &ReportsHandler{inventory: inv, transactions: txs, dispatcher: dispatcher}
}

// BuildTable resolves a report type into a formatter table. Shared by the
// synchronous export endpoint and the background report worker.
func (h *ReportsHandler) BuildTable(ctx context.Context, reportType string) (export.Table, error) {
	return h.buildTable(ctx, reportType, nil)
}

func (h *ReportsHandler) buildTable(ctx context.Context, reportType string, dateRange *export.DateRange) (export.Table, error) {
	switch reportType {
	case ReportInventory, ReportLowStock, ReportValue:
		if !h.inventory.Loaded() {
			if err := h.inventory.Load(ctx); err != nil {
				return export.Table{}, err
			}
		}
	case ReportTransactions:
		if !h.transactions.Loaded() {
			if err := h.transactions.Load(ctx); err != nil {
				return export.Table{}, err
			}
		}
	default:
		return export.Table{}, fmt.Errorf("unknown report type %q", reportType)
	}

	var t export.Table
	switch reportType {
	case ReportInventory:
		t = export.BuildInventoryTable(h.inventory.Items())
	case ReportLowStock:
		t = export.BuildLowStockTable(h.inventory.LowStockItems())
	case ReportValue:
		t = export.BuildValueTable(h.inventory.Items(), h.inventory.Stats().TotalValue)
	case ReportTransactions:
		t = export.BuildTransactionsTable(filterByRange(h.transactions.Transactions(), dateRange))
	}
	t.Range = dateRange
	return t, nil
}

// Export GET /v1/reports/:type/export?format=csv|pdf|txt|xlsx&from=...&to=...
func (h *ReportsHandler) Export(c *gin.Context) {
	reportType := c.Param("type")
	format := c.DefaultQuery("format", "csv")
	mime, ok := exportMIME[format]
	if !ok {
		c.JSON(http.StatusBadRequest, apierror.New("Unsupported export format"))
		return
	}

	dateRange, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	table, err := h.buildTable(c.Request.Context(), reportType, dateRange)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	var data []byte
	switch format {
	case "csv":
		data = export.CSV(table)
	case "txt":
		data = export.TXT(table)
	case "pdf":
		data, err = export.PDF(table)
	case "xlsx":
		data, err = export.XLSX(table)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to render report"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(reportType, format)))
	c.Data(http.StatusOK, mime, data)
}

// Generate POST /v1/reports/:type/generate
// Enqueues a background job that renders the report to the storage path.
func (h *ReportsHandler) Generate(c *gin.Context) {
	reportType := c.Param("type")
	switch reportType {
	case ReportInventory, ReportLowStock, ReportValue, ReportTransactions:
	default:
		c.JSON(http.StatusBadRequest, apierror.New("Unknown report type"))
		return
	}

	payload := worker.ReportJobPayload{
		ReportType:  reportType,
		RequestedBy: middleware.ActorID(c).String(),
	}
	if claims := middleware.GetClaims(c); claims != nil {
		payload.NotifyEmail = claims.Email
	}
	err := h.dispatcher.EnqueueReport(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to enqueue report"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": true, "report_type": reportType})
}

// ExportItems GET /v1/items/export
// Shortcut for the inventory report as CSV.
func (h *ReportsHandler) ExportItems(c *gin.Context) {
	table, err := h.buildTable(c.Request.Context(), ReportInventory, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load inventory"))
		return
	}
	c.Header("Content-Disposition", "attachment; filename=inventory-export.csv")
	c.Data(http.StatusOK, exportMIME["csv"], export.CSV(table))
}

func parseDateRange(from, to string) (*export.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("both from and to are required for a date range")
	}
	f, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %v", err)
	}
	t, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date: %v", err)
	}
	if t.Before(f) {
		return nil, fmt.Errorf("to date precedes from date")
	}
	return &export.DateRange{From: f, To: t}, nil
}

// filterByRange keeps transactions whose creation date falls inside the
// range, inclusive on both ends.
func filterByRange(txs []dto.TransactionResponse, r *export.DateRange) []dto.TransactionResponse {
	if r == nil {
		return txs
	}
	end := r.To.Add(24 * time.Hour)
	var out []dto.TransactionResponse
	for _, tx := range txs {
		created, err := time.Parse(time.RFC3339, tx.CreatedAt)
		if err != nil {
			continue
		}
		if !created.Before(r.From) && created.Before(end) {
			out = append(out, tx)
		}
	}
	return out
}
