package handlers

import (
	"net/http"

	"koobings/middleware"
	"koobings/models"
	"koobings/services/booking"
	"koobings/services/client"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	Svc        client.ClientService
	BookingSvc booking.BookingService
}

func NewClientHandler(svc client.ClientService, bookingSvc booking.BookingService) *ClientHandler {
	return &ClientHandler{Svc: svc, BookingSvc: bookingSvc}
}

// Create answers POST /api/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var cl models.Client
	if err := c.ShouldBindJSON(&cl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cl.BusinessID = c.GetString(middleware.CtxBusinessID)
	created, err := h.Svc.Create(c.Request.Context(), &cl)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get answers GET /api/clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	cl, err := h.Svc.GetByID(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, cl)
}

// List answers GET /api/clients.
func (h *ClientHandler) List(c *gin.Context) {
	list, err := h.Svc.ListByBusiness(c.Request.Context(), c.GetString(middleware.CtxBusinessID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Update answers PUT /api/clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	var cl models.Client
	if err := c.ShouldBindJSON(&cl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cl.ID = c.Param("id")
	cl.BusinessID = c.GetString(middleware.CtxBusinessID)
	updated, err := h.Svc.Update(c.Request.Context(), &cl)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete answers DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}

// Appointments answers GET /api/clients/:id/appointments with the client's
// booking history.
func (h *ClientHandler) Appointments(c *gin.Context) {
	businessID := c.GetString(middleware.CtxBusinessID)
	if _, err := h.Svc.GetByID(c.Request.Context(), businessID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	list, err := h.BookingSvc.ListByClient(c.Request.Context(), businessID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, list)
}
