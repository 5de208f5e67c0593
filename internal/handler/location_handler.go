// Package handler contains the gin HTTP handlers.
package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/razorspoint/timeline-backend-go/internal/models"
	"github.com/razorspoint/timeline-backend-go/internal/service"
	"github.com/razorspoint/timeline-backend-go/pkg/response"
)

// LocationHandler handles HTTP requests for named locations
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// List handles GET /api/v1/locations
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locationService.List()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  locations,
		"count": len(locations),
	})
}

// Get handles GET /api/v1/locations/:id
func (h *LocationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	loc, err := h.locationService.GetByID(id)
	if err != nil {
		response.NotFound(c, "Location not found")
		return
	}

	response.Success(c, loc)
}

// Create handles POST /api/v1/locations
func (h *LocationHandler) Create(c *gin.Context) {
	var loc models.NamedLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.locationService.Create(&loc); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, loc)
}

// Update handles PUT /api/v1/locations/:id
func (h *LocationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	var loc models.NamedLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	loc.ID = id

	if err := h.locationService.Update(&loc); err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.NotFound(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, loc)
}

// Delete handles DELETE /api/v1/locations/:id
func (h *LocationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	if err := h.locationService.Delete(id); err != nil {
		response.NotFound(c, "Location not found")
		return
	}

	response.Success(c, gin.H{"deleted": id})
}
