package handler

import (
	"net/http"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/apierror"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionsHandler struct{ svc service.TransactionService }

func NewTransactionsHandler(svc service.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

// List GET /v1/transactions
func (h *TransactionsHandler) List(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load transactions"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.Transactions())
}

// TodayCount GET /v1/transactions/today-count
func (h *TransactionsHandler) TodayCount(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load transactions"))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"count": h.svc.TodayCount()})
}
