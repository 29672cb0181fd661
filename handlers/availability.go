package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"koobings/middleware"
	"koobings/services/business"
	"koobings/services/scheduling"
	"koobings/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the slot computation endpoints for the
// dashboard and the public portal.
type AvailabilityHandler struct {
	Engine      scheduling.AvailabilityEngine
	BusinessSvc business.BusinessService
}

func NewAvailabilityHandler(engine scheduling.AvailabilityEngine, businessSvc business.BusinessService) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, BusinessSvc: businessSvc}
}

// GetDaySlots answers GET /availability for the authenticated dashboard.
// Query: staffId, serviceId, date, optional duration. A day with no slots is
// a successful empty answer, not an error.
func (h *AvailabilityHandler) GetDaySlots(c *gin.Context) {
	businessID := c.GetString(middleware.CtxBusinessID)
	staffID := c.Query("staffId")
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if staffID == "" || serviceID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staffId, serviceId and date are required"})
		return
	}
	duration := 0
	if raw := c.Query("duration"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive integer"})
			return
		}
		duration = d
	}

	avail, err := h.Engine.GetDaySlots(c.Request.Context(), businessID, staffID, serviceID, date, duration)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

// GetWeekSlots answers GET /availability/week for the dashboard calendar.
func (h *AvailabilityHandler) GetWeekSlots(c *gin.Context) {
	businessID := c.GetString(middleware.CtxBusinessID)
	staffID := c.Query("staffId")
	serviceID := c.Query("serviceId")
	if staffID == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staffId and serviceId are required"})
		return
	}
	weekIndex := 0
	if raw := c.Query("week"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil || w < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a non-negative integer"})
			return
		}
		weekIndex = w
	}

	week, err := h.Engine.GetWeekSlots(c.Request.Context(), businessID, staffID, serviceID, weekIndex)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// PublicAvailability answers GET /api/public/:businessSlug/availability for
// the customer portal. The business is resolved by slug and must be visible.
func (h *AvailabilityHandler) PublicAvailability(c *gin.Context) {
	biz, err := h.BusinessSvc.GetBySlug(c.Request.Context(), c.Param("businessSlug"))
	if err != nil || !biz.Settings.PubliclyVisible {
		c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		return
	}
	staffID := c.Query("staffId")
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if staffID == "" || serviceID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staffId, serviceId and date are required"})
		return
	}

	avail, err := h.Engine.GetDaySlots(c.Request.Context(), biz.ID, staffID, serviceID, date, 0)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

// respondAvailabilityError maps engine failures onto the HTTP contract:
// malformed input is the caller's fault, unknown entities are 404, the rest
// is internal.
func respondAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrMalformedSchedule):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrBusinessNotFound),
		errors.Is(err, scheduling.ErrStaffNotFound),
		errors.Is(err, scheduling.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrStaffNotAllowed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
	}
}
