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

type ItemsHandler struct{ svc service.InventoryService }

func NewItemsHandler(svc service.InventoryService) *ItemsHandler {
	return &ItemsHandler{svc: svc}
}

// List GET /v1/items
func (h *ItemsHandler) List(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load inventory"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.Items())
}

// LowStock GET /v1/items/low-stock
func (h *ItemsHandler) LowStock(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load inventory"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.LowStockItems())
}

// Stats GET /v1/items/stats
func (h *ItemsHandler) Stats(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load inventory"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.Stats())
}

// Create POST /v1/items
func (h *ItemsHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Create(c.Request.Context(), middleware.ActorID(c), req); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusCreated, "Item created successfully")
}

// Update PATCH /v1/items/:id
func (h *ItemsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var patch dto.ItemPatch
	if !bindAndValidate(c, &patch) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), middleware.ActorID(c), id, patch); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusOK, "Item updated successfully")
}

// Delete DELETE /v1/items/:id
func (h *ItemsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusOK, "Item deleted successfully")
}
