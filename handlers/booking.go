package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"koobings/middleware"
	"koobings/models"
	"koobings/services/booking"
	"koobings/services/business"
	"koobings/services/scheduling"
	"koobings/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Svc         booking.BookingService
	BusinessSvc business.BusinessService
}

func NewBookingHandler(svc booking.BookingService, businessSvc business.BusinessService) *BookingHandler {
	return &BookingHandler{Svc: svc, BusinessSvc: businessSvc}
}

// InitiateSession answers POST /api/public/:businessSlug/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	biz, err := h.BusinessSvc.GetBySlug(c.Request.Context(), c.Param("businessSlug"))
	if err != nil || !biz.Settings.PubliclyVisible {
		c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		return
	}
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.InitiateSession(c.Request.Context(), biz.ID, input.ServiceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// UpdateSession answers PUT /api/public/:businessSlug/booking/session/:sessionId
// with the staff and date choice, returning the recomputed availability.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var input struct {
		StaffID string `json:"staffId" binding:"required"`
		Date    string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.UpdateSession(c.Request.Context(), c.Param("sessionId"), input.StaffID, input.Date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmSession answers POST /api/public/:businessSlug/booking/session/:sessionId/confirm.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	var input models.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	appt, err := h.Svc.ConfirmSession(c.Request.Context(), c.Param("sessionId"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelSession answers DELETE /api/public/:businessSlug/booking/session/:sessionId.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Request.Context(), c.Param("sessionId")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}

// Book answers POST /api/appointments for the dashboard.
func (h *BookingHandler) Book(c *gin.Context) {
	var input struct {
		ClientID  string `json:"clientId" binding:"required"`
		StaffID   string `json:"staffId" binding:"required"`
		ServiceID string `json:"serviceId" binding:"required"`
		Date      string `json:"date" binding:"required"`
		Time      string `json:"time" binding:"required"`
		Duration  int    `json:"duration"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	appt, err := h.Svc.Book(c.Request.Context(), c.GetString(middleware.CtxBusinessID),
		input.ClientID, input.StaffID, input.ServiceID,
		models.BookingRequestInput{
			StaffID:  input.StaffID,
			Date:     input.Date,
			Time:     input.Time,
			Duration: input.Duration,
			Notes:    input.Notes,
		})
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// Get answers GET /api/appointments/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	appt, err := h.Svc.GetByID(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// List answers GET /api/appointments?from=&to=.
func (h *BookingHandler) List(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.DefaultQuery("from", time.Now().Format("2006-01-02")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad from date"})
		return
	}
	to, err := time.Parse("2006-01-02", c.DefaultQuery("to", from.AddDate(0, 0, 7).Format("2006-01-02")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad to date"})
		return
	}
	list, err := h.Svc.ListByRange(c.Request.Context(), c.GetString(middleware.CtxBusinessID), from, to.AddDate(0, 0, 1))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, list)
}

// Status transition endpoints, PUT /api/appointments/:id/<action>.

func (h *BookingHandler) Accept(c *gin.Context) {
	h.doTransition(c, h.Svc.Accept)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	h.doTransition(c, h.Svc.Reject)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.doTransition(c, h.Svc.Cancel)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.doTransition(c, h.Svc.Complete)
}

func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	h.doTransition(c, h.Svc.MarkNoShow)
}

func (h *BookingHandler) doTransition(c *gin.Context, fn func(ctx context.Context, businessID, id string) (*models.Appointment, error)) {
	appt, err := fn(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// respondBookingError maps booking failures onto the HTTP contract. A lost
// slot race is a conflict the customer can recover from by picking another
// time.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSessionNotFound),
		errors.Is(err, booking.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrMalformedSchedule):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrBusinessNotFound),
		errors.Is(err, scheduling.ErrStaffNotFound),
		errors.Is(err, scheduling.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrStaffNotAllowed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
	}
}
