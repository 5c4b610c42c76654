package handlers

import (
	"net/http"

	"github.com/careerlane/job-portal/internal/dtos"
	"github.com/careerlane/job-portal/internal/middleware"
	"github.com/careerlane/job-portal/internal/services"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		ApplicationService: a,
	}
}

// Apply is the POST /api/applications/:jobId endpoint (applicants only).
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := idParam(c, "jobId")
	if !ok {
		return
	}
	identity, _ := middleware.CurrentIdentity(c)
	application, err := h.ApplicationService.Apply(identity.UserID, jobID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": application,
	})
}

// ListForJob returns a job's applications to its owning recruiter.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, ok := idParam(c, "jobId")
	if !ok {
		return
	}
	identity, _ := middleware.CurrentIdentity(c)
	applications, err := h.ApplicationService.ListForJob(jobID, identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// UpdateStatus is the PUT /api/applications/:applicationId endpoint.
// The application id is the canonical identifier here; the job is
// resolved from the record for the ownership check.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, ok := idParam(c, "applicationId")
	if !ok {
		return
	}
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	identity, _ := middleware.CurrentIdentity(c)
	application, err := h.ApplicationService.SetStatus(applicationID, identity.UserID, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Application status updated successfully",
		"application": application,
	})
}

// Withdraw deletes the caller's own application.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	applicationID, ok := idParam(c, "applicationId")
	if !ok {
		return
	}
	identity, _ := middleware.CurrentIdentity(c)
	if err := h.ApplicationService.Withdraw(applicationID, identity.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
