package handlers

import (
	"net/http"
	"time"

	"koobings/middleware"
	"koobings/models"
	"koobings/services/business"
	"koobings/services/staff"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	Svc         staff.StaffService
	BusinessSvc business.BusinessService
}

func NewStaffHandler(svc staff.StaffService, businessSvc business.BusinessService) *StaffHandler {
	return &StaffHandler{Svc: svc, BusinessSvc: businessSvc}
}

// Create answers POST /api/staff.
func (h *StaffHandler) Create(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Role     string `json:"role"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	st := &models.Staff{
		BusinessID: c.GetString(middleware.CtxBusinessID),
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
	}
	created, err := h.Svc.Create(c.Request.Context(), st, input.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Login answers POST /api/staff/login.
func (h *StaffHandler) Login(c *gin.Context) {
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

// Get answers GET /api/staff/:id.
func (h *StaffHandler) Get(c *gin.Context) {
	st, err := h.Svc.GetByID(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
		return
	}
	c.JSON(http.StatusOK, st)
}

// List answers GET /api/staff.
func (h *StaffHandler) List(c *gin.Context) {
	list, err := h.Svc.ListByBusiness(c.Request.Context(), c.GetString(middleware.CtxBusinessID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list staff"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Update answers PUT /api/staff/:id.
func (h *StaffHandler) Update(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	st := &models.Staff{
		ID:         c.Param("id"),
		BusinessID: c.GetString(middleware.CtxBusinessID),
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
	}
	updated, err := h.Svc.Update(c.Request.Context(), st)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete answers DELETE /api/staff/:id.
func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff member deleted"})
}

// SetSchedule answers PUT /api/staff/:id/schedule with the full weekly map.
func (h *StaffHandler) SetSchedule(c *gin.Context) {
	var schedule map[string]models.DaySchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Svc.SetSchedule(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id"), schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule updated"})
}

// GetSchedule answers GET /api/staff/:id/schedule.
func (h *StaffHandler) GetSchedule(c *gin.Context) {
	av, err := h.Svc.GetSchedule(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, av)
}

// AddUnavailability answers POST /api/staff/:id/unavailability.
func (h *StaffHandler) AddUnavailability(c *gin.Context) {
	var input struct {
		Start  time.Time `json:"start" binding:"required"`
		End    time.Time `json:"end" binding:"required"`
		Reason string    `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	u := &models.StaffUnavailability{
		StaffID: c.Param("id"),
		Start:   input.Start,
		End:     input.End,
		Reason:  input.Reason,
	}
	created, err := h.Svc.AddUnavailability(c.Request.Context(), c.GetString(middleware.CtxBusinessID), u)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListUnavailability answers GET /api/staff/:id/unavailability?from=&to=.
func (h *StaffHandler) ListUnavailability(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.DefaultQuery("from", time.Now().Format("2006-01-02")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad from date"})
		return
	}
	to, err := time.Parse("2006-01-02", c.DefaultQuery("to", from.AddDate(0, 1, 0).Format("2006-01-02")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad to date"})
		return
	}
	list, err := h.Svc.ListUnavailability(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list unavailability"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// PublicList answers GET /api/public/:businessSlug/staff with the bookable
// team roster. Only public fields go out.
func (h *StaffHandler) PublicList(c *gin.Context) {
	biz, err := h.BusinessSvc.GetBySlug(c.Request.Context(), c.Param("businessSlug"))
	if err != nil || !biz.Settings.PubliclyVisible {
		c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		return
	}
	list, err := h.Svc.ListByBusiness(c.Request.Context(), biz.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list staff"})
		return
	}
	type publicStaff struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	out := make([]publicStaff, 0, len(list))
	for _, st := range list {
		out = append(out, publicStaff{ID: st.ID, Name: st.Name})
	}
	c.JSON(http.StatusOK, out)
}

// RemoveUnavailability answers DELETE /api/staff/:id/unavailability/:uid.
func (h *StaffHandler) RemoveUnavailability(c *gin.Context) {
	if err := h.Svc.RemoveUnavailability(c.Request.Context(), c.GetString(middleware.CtxBusinessID), c.Param("id"), c.Param("uid")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unavailability removed"})
}
