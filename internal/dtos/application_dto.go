package dtos

import "github.com/careerlane/job-portal/internal/models"

type StatusUpdateRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}
