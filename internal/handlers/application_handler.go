package handlers

import (
	"net/http"

	"github.com/botboss/botboss-api/internal/dtos"
	"github.com/botboss/botboss-api/internal/services"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// ListApplications is the GET /api/applications endpoint
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.Applications.List()
	if err != nil {
		respondError(c, err, "Failed to fetch applications")
		return
	}
	c.JSON(http.StatusOK, applications)
}

// CreateApplication is the POST /api/applications endpoint
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	application, err := h.Applications.Create(req)
	if err != nil {
		respondError(c, err, "Failed to submit application")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully!",
		"application": application,
	})
}

// UpdateApplication is the PUT /api/applications/:id endpoint
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var req dtos.ApplicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	application, err := h.Applications.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update application")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application updated successfully!",
		"application": application,
	})
}

// CompanyApplications is the GET /api/company/:companyId/applications endpoint
func (h *ApplicationHandler) CompanyApplications(c *gin.Context) {
	applications, err := h.Applications.ListForCompany(c.Param("companyId"))
	if err != nil {
		respondError(c, err, "Failed to fetch company applications")
		return
	}
	c.JSON(http.StatusOK, applications)
}
