package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/careerlane/job-portal/internal/services"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps the services error taxonomy onto HTTP
// statuses. Anything unrecognized is a storage or infra failure and
// surfaces as a 500 with the raw message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage(c)})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
	case errors.Is(err, services.ErrBadCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, services.ErrDuplicateApplication):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You have already applied for this job"})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application status"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

// notFoundMessage picks the entity name from the route so "Job not
// found" and "Application not found" read like they should.
func notFoundMessage(c *gin.Context) string {
	if c.Param("applicationId") != "" {
		return "Application not found"
	}
	if c.Param("jobId") != "" || c.Param("id") != "" {
		return "Job not found"
	}
	return "Resource not found"
}

// idParam parses a numeric path parameter, answering 400 itself when
// the value is not an id.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id: " + raw})
		return 0, false
	}
	return uint(id), true
}
