package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"heiwahouse/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes wires the dashboard catalog CRUD; the caller applies
// the admin auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/rooms", h.ListRooms)
	rg.POST("/admin/rooms", h.CreateRoom)
	rg.PUT("/admin/rooms/:id", h.UpdateRoom)
	rg.DELETE("/admin/rooms/:id", h.DeactivateRoom)

	rg.GET("/admin/surf-camps", h.ListSurfCamps)
	rg.POST("/admin/surf-camps", h.CreateSurfCamp)
	rg.PUT("/admin/surf-camps/:id", h.UpdateSurfCamp)
	rg.DELETE("/admin/surf-camps/:id", h.DeactivateSurfCamp)

	rg.GET("/admin/add-ons", h.ListAddOns)
	rg.POST("/admin/add-ons", h.CreateAddOn)
	rg.PUT("/admin/add-ons/:id", h.UpdateAddOn)
	rg.DELETE("/admin/add-ons/:id", h.DeactivateAddOn)
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeactivateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.DeactivateRoom(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) ListSurfCamps(c *gin.Context) {
	camps, err := h.service.ListSurfCamps(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"surf_camps": camps})
}

func (h *Handler) CreateSurfCamp(c *gin.Context) {
	var req SurfCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	camp, err := h.service.CreateSurfCamp(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"surf_camp": camp})
}

func (h *Handler) UpdateSurfCamp(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req SurfCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	camp, err := h.service.UpdateSurfCamp(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"surf_camp": camp})
}

func (h *Handler) DeactivateSurfCamp(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.DeactivateSurfCamp(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) ListAddOns(c *gin.Context) {
	addOns, err := h.service.ListAddOns(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"add_ons": addOns})
}

func (h *Handler) CreateAddOn(c *gin.Context) {
	var req AddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	addOn, err := h.service.CreateAddOn(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"add_on": addOn})
}

func (h *Handler) UpdateAddOn(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req AddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	addOn, err := h.service.UpdateAddOn(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"add_on": addOn})
}

func (h *Handler) DeactivateAddOn(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.DeactivateAddOn(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", vErr.Fields)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
}
