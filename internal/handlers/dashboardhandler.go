package handlers

import (
	"net/http"

	"github.com/careerlane/job-portal/internal/middleware"
	"github.com/careerlane/job-portal/internal/services"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	DashboardService *services.DashboardService
}

func NewDashboardHandler(d *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		DashboardService: d,
	}
}

func (h *DashboardHandler) UserDashboard(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	dashboard, err := h.DashboardService.UserDashboard(identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":            "User dashboard retrieved successfully",
		"stats":              dashboard.Stats,
		"recentApplications": dashboard.RecentApplications,
	})
}

func (h *DashboardHandler) RecruiterDashboard(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	dashboard, err := h.DashboardService.RecruiterDashboard(identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":            "Recruiter dashboard retrieved successfully",
		"stats":              dashboard.Stats,
		"recentApplications": dashboard.RecentApplications,
	})
}
