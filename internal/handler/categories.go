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

type CategoriesHandler struct{ svc service.CategoryService }

func NewCategoriesHandler(svc service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// List GET /v1/categories
func (h *CategoriesHandler) List(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load categories"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.Categories())
}

// Create POST /v1/categories
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Create(c.Request.Context(), middleware.ActorID(c), req); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusCreated, "Category created successfully")
}

// Update PATCH /v1/categories/:id
func (h *CategoriesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var patch dto.CategoryPatch
	if !bindAndValidate(c, &patch) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), middleware.ActorID(c), id, patch); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusOK, "Category updated successfully")
}

// Delete DELETE /v1/categories/:id
func (h *CategoriesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusOK, "Category deleted successfully")
}
