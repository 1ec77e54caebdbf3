package availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"heiwahouse/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler serves the WordPress widget endpoints. The API-key middleware is
// applied by the caller on the route group.
type Handler struct {
	cache   *Cache
	service *Service
}

func NewHandler(cache *Cache, service *Service) *Handler {
	return &Handler{cache: cache, service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dates/availability", h.GetDateAvailability)
	rg.GET("/rooms/availability", h.GetRoomAvailability)
	rg.GET("/rooms", h.GetRooms)
}

func (h *Handler) GetDateAvailability(c *gin.Context) {
	start, end, participants, ok := h.queryParams(c)
	if !ok {
		return
	}

	checkedAt := time.Now()
	result, err := h.cache.FetchDates(c.Request.Context(), start, end, participants)
	if err != nil {
		h.handleResolveError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"date_availability": result.Days,
		"summary":           result.Summary,
	}, meta(checkedAt, h.cache.TTL(), result.Fallback))
}

func (h *Handler) GetRoomAvailability(c *gin.Context) {
	start, end, participants, ok := h.queryParams(c)
	if !ok {
		return
	}

	checkedAt := time.Now()
	result, err := h.cache.FetchRooms(c.Request.Context(), start, end, participants)
	if err != nil {
		h.handleResolveError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"available_rooms": result.Rooms,
	}, meta(checkedAt, h.cache.TTL(), result.Fallback))
}

func (h *Handler) GetRooms(c *gin.Context) {
	checkedAt := time.Now()
	result, err := h.service.CatalogRooms(c.Request.Context())
	if err != nil {
		h.handleResolveError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"available_rooms": result.Rooms,
	}, meta(checkedAt, h.cache.TTL(), result.Fallback))
}

func (h *Handler) queryParams(c *gin.Context) (start, end string, participants int, ok bool) {
	start = c.Query("start_date")
	end = c.Query("end_date")
	if start == "" || end == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date and end_date are required")
		return "", "", 0, false
	}

	participants = 1
	if raw := c.Query("participants"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "participants must be a positive integer")
			return "", "", 0, false
		}
		participants = v
	}

	return start, end, participants, true
}

func (h *Handler) handleResolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRange):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range: end_date must be after start_date")
	default:
		// Reached only in fail-loud mode or on request abort.
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unable to check availability, try again")
	}
}

func meta(checkedAt time.Time, ttl time.Duration, fallback bool) gin.H {
	m := gin.H{
		"checked_at":       checkedAt.UTC().Format(time.RFC3339),
		"cache_expires_at": checkedAt.Add(ttl).UTC().Format(time.RFC3339),
	}
	if fallback {
		m["fallback"] = true
	}
	return m
}
