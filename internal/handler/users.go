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

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// List GET /v1/users
func (h *UsersHandler) List(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load users"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.Users())
}

// Stats GET /v1/users/stats
func (h *UsersHandler) Stats(c *gin.Context) {
	if !h.svc.Loaded() {
		if err := h.svc.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to load users"))
			return
		}
	}
	c.JSON(http.StatusOK, h.svc.Stats())
}

// Create POST /v1/users
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Create(c.Request.Context(), middleware.ActorID(c), req); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusCreated, "User created successfully")
}

// Update PATCH /v1/users/:id
func (h *UsersHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var patch dto.UserPatch
	if !bindAndValidate(c, &patch) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), middleware.ActorID(c), id, patch); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusOK, "User updated successfully")
}

// Delete DELETE /v1/users/:id
func (h *UsersHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		mutationFail(c, err)
		return
	}
	mutationOK(c, http.StatusOK, "User deleted successfully")
}
