package handlers

import (
	"net/http"

	"koobings/middleware"
	"koobings/models"
	"koobings/services/business"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	Svc business.BusinessService
}

func NewBusinessHandler(svc business.BusinessService) *BusinessHandler {
	return &BusinessHandler{Svc: svc}
}

// Register answers POST /api/business/register.
func (h *BusinessHandler) Register(c *gin.Context) {
	var reg models.BusinessRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	biz, err := h.Svc.Register(c.Request.Context(), reg)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, biz)
}

// Login answers POST /api/business/login.
func (h *BusinessHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get answers GET /api/business/me.
func (h *BusinessHandler) Get(c *gin.Context) {
	biz, err := h.Svc.GetByID(c.Request.Context(), c.GetString(middleware.CtxBusinessID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// UpdateSettings answers PUT /api/business/settings.
func (h *BusinessHandler) UpdateSettings(c *gin.Context) {
	var settings models.BusinessSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	biz, err := h.Svc.UpdateSettings(c.Request.Context(), c.GetString(middleware.CtxBusinessID), settings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, biz)
}
