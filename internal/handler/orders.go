package handler

import (
	"net/http"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/apierror"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/dto"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/middleware"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// List GET /v1/orders
func (h *OrdersHandler) List(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load orders"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.Orders())
}

// Stats GET /v1/orders/stats
func (h *OrdersHandler) Stats(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load orders"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.Stats())
}

// Today GET /v1/orders/today
func (h *OrdersHandler) Today(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load orders"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.TodayOrders())
}

// Items GET /v1/orders/:id/items
func (h *OrdersHandler) Items(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	items, err := h.svc.OrderItems(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create POST /v1/orders
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		mutationFail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateStatus PATCH /v1/orders/:id/status
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.UpdateOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), middleware.ActorID(c), id, req.Status); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusOK, "Order status updated successfully")
}

// Delete DELETE /v1/orders/:id
func (h *OrdersHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusOK, "Order deleted and stock restored")
}
