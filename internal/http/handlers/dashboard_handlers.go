package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
	"github.com/s0ph13d3f45w/landlord-ai/internal/http/middleware"
	"github.com/s0ph13d3f45w/landlord-ai/internal/services"
)

// DashboardHandlers serves the landlord dashboard API
type DashboardHandlers struct {
	dashboardSvc *services.DashboardService
}

// NewDashboardHandlers creates new dashboard handlers
func NewDashboardHandlers(dashboardSvc *services.DashboardService) *DashboardHandlers {
	return &DashboardHandlers{dashboardSvc: dashboardSvc}
}

// PropertyRequest represents property create/update payloads
type PropertyRequest struct {
	Address             string  `json:"address" binding:"required"`
	MonthlyRent         float64 `json:"monthly_rent" binding:"required,gt=0"`
	RentDueDay          int     `json:"rent_due_day" binding:"required,min=1,max=31"`
	SpecialInstructions string  `json:"special_instructions"`
}

// TenantRequest represents tenant create/update payloads
type TenantRequest struct {
	PropertyID uint   `json:"property_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	MoveInDate string `json:"move_in_date"`
}

// TenantUpdateRequest mirrors TenantRequest but leaves property_id
// optional so an edit can keep the tenant where they are
type TenantUpdateRequest struct {
	PropertyID uint   `json:"property_id"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	MoveInDate string `json:"move_in_date"`
}

// ListMessages returns paginated message history
func (h *DashboardHandlers) ListMessages(c *gin.Context) {
	landlordID, ok := middleware.LandlordID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	filter := domain.MessageFilter{}
	if v := c.Query("category"); v != "" {
		filter.Category = domain.Category(v)
		if !filter.Category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
	}
	if v := c.Query("needs_attention"); v != "" {
		flag := v == "true"
		filter.NeedsAttention = &flag
	}
	if v := c.Query("tenant_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant_id"})
			return
		}
		filter.TenantID = uint(id)
	}

	pageData, err := h.dashboardSvc.Messages(c.Request.Context(), landlordID, filter, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pageData})
}

// Stats returns aggregate message counts
func (h *DashboardHandlers) Stats(c *gin.Context) {
	landlordID, ok := middleware.LandlordID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	counts, err := h.dashboardSvc.Counts(c.Request.Context(), landlordID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": counts})
}

// CreateProperty registers a new property
func (h *DashboardHandlers) CreateProperty(c *gin.Context) {
	landlordID, ok := middleware.LandlordID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property := &domain.Property{
		Address:             req.Address,
		MonthlyRent:         req.MonthlyRent,
		RentDueDay:          req.RentDueDay,
		SpecialInstructions: req.SpecialInstructions,
	}
	if err := h.dashboardSvc.CreateProperty(c.Request.Context(), landlordID, property); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"property_id": property.ID}})
}

// ListProperties returns the landlord's properties
func (h *DashboardHandlers) ListProperties(c *gin.Context) {
	landlordID, ok := middleware.LandlordID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	properties, err := h.dashboardSvc.ListProperties(c.Request.Context(), landlordID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": properties})
}

// UpdateProperty edits an existing property
func (h *DashboardHandlers) UpdateProperty(c *gin.Context) {
	landlordID, ok := middleware.LandlordID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property := &domain.Property{
		ID:                  uint(id),
		Address:             req.Address,
		MonthlyRent:         req.MonthlyRent,
		RentDueDay:          req.RentDueDay,
		SpecialInstructions: req.SpecialInstructions,
	}
	if err := h.dashboardSvc.UpdateProperty(c.Request.Context(), landlordID, property); err != nil {
		if err == domain.ErrPropertyNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Property updated"}})
}

// CreateTenant registers a new tenant
func (h *DashboardHandlers) CreateTenant(c *gin.Context) {
	landlordID, ok := middleware.LandlordID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant := &domain.Tenant{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Phone:      req.Phone,
	}
	if req.MoveInDate != "" {
		moveIn, err := time.Parse("2006-01-02", req.MoveInDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "move_in_date must be YYYY-MM-DD"})
			return
		}
		tenant.MoveInDate = moveIn
	}

	if err := h.dashboardSvc.CreateTenant(c.Request.Context(), landlordID, tenant); err != nil {
		if err == domain.ErrPropertyNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tenant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"tenant_id": tenant.ID}})
}

// UpdateTenant edits an existing tenant. property_id may be omitted to
// keep the current assignment.
func (h *DashboardHandlers) UpdateTenant(c *gin.Context) {
	landlordID, ok := middleware.LandlordID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
		return
	}

	var req TenantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant := &domain.Tenant{
		ID:         uint(id),
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Phone:      req.Phone,
	}
	if req.MoveInDate != "" {
		moveIn, err := time.Parse("2006-01-02", req.MoveInDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "move_in_date must be YYYY-MM-DD"})
			return
		}
		tenant.MoveInDate = moveIn
	}

	if err := h.dashboardSvc.UpdateTenant(c.Request.Context(), landlordID, tenant); err != nil {
		if err == domain.ErrTenantNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tenant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Tenant updated"}})
}

// ListTenants returns the landlord's tenants
func (h *DashboardHandlers) ListTenants(c *gin.Context) {
	landlordID, ok := middleware.LandlordID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	tenants, err := h.dashboardSvc.ListTenants(c.Request.Context(), landlordID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tenants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tenants})
}
