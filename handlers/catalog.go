package handlers

import (
	"net/http"

	"koobings/middleware"
	"koobings/models"
	"koobings/services/business"
	"koobings/services/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Svc         catalog.CatalogService
	BusinessSvc business.BusinessService
}

func NewCatalogHandler(svc catalog.CatalogService, businessSvc business.BusinessService) *CatalogHandler {
	return &CatalogHandler{Svc: svc, BusinessSvc: businessSvc}
}

// Create answers POST /api/services.
func (h *CatalogHandler) Create(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.BusinessID = c.GetString(middleware.CtxBusinessID)
	created, err := h.Svc.Create(c.Request.Context(), &svc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get answers GET /api/services/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	svc, err := h.Svc.GetByID(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// List answers GET /api/services.
func (h *CatalogHandler) List(c *gin.Context) {
	list, err := h.Svc.ListByBusiness(c.Request.Context(), c.GetString(middleware.CtxBusinessID), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Update answers PUT /api/services/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")
	svc.BusinessID = c.GetString(middleware.CtxBusinessID)
	updated, err := h.Svc.Update(c.Request.Context(), &svc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete answers DELETE /api/services/:id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// PublicList answers GET /api/public/:businessSlug/services with the active
// catalogue for the customer portal.
func (h *CatalogHandler) PublicList(c *gin.Context) {
	biz, err := h.BusinessSvc.GetBySlug(c.Request.Context(), c.Param("businessSlug"))
	if err != nil || !biz.Settings.PubliclyVisible {
		c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		return
	}
	list, err := h.Svc.ListByBusiness(c.Request.Context(), biz.ID, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusOK, list)
}
