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

type SuppliersHandler struct{ svc service.SupplierService }

func NewSuppliersHandler(svc service.SupplierService) *SuppliersHandler {
	return &SuppliersHandler{svc: svc}
}

// List GET /v1/suppliers
func (h *SuppliersHandler) List(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load suppliers"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.Suppliers())
}

// Create POST /v1/suppliers
func (h *SuppliersHandler) Create(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Create(c.Request.Context(), middleware.ActorID(c), req); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusCreated, "Supplier created successfully")
}

// Update PATCH /v1/suppliers/:id
func (h *SuppliersHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var patch dto.SupplierPatch
	if !bindAndValidate(c, &patch) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), middleware.ActorID(c), id, patch); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusOK, "Supplier updated successfully")
}

// Delete DELETE /v1/suppliers/:id
func (h *SuppliersHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusOK, "Supplier deleted successfully")
}
