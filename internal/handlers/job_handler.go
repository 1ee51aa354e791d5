package handlers

import (
	"net/http"

	"github.com/botboss/botboss-api/internal/dtos"
	"github.com/botboss/botboss-api/internal/services"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	Jobs *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// ListJobs is the GET /api/jobs endpoint (active jobs only)
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListActive()
	if err != nil {
		respondError(c, err, "Failed to fetch jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob is the POST /api/jobs endpoint
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.Create(req)
	if err != nil {
		respondError(c, err, "Failed to create job")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job successfully posted!",
		"job":     job,
	})
}

// UpdateJob is the PUT /api/jobs/:id endpoint
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated successfully!",
		"job":     job,
	})
}

// DeleteJob is the DELETE /api/jobs/:id endpoint
func (h *JobHandler) DeleteJob(c *gin.Context) {
	job, err := h.Jobs.Delete(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to delete job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted successfully!",
		"job":     job,
	})
}

// CompanyJobs is the GET /api/company/:companyId/jobs endpoint
func (h *JobHandler) CompanyJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListForCompany(c.Param("companyId"))
	if err != nil {
		respondError(c, err, "Failed to fetch company jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}
