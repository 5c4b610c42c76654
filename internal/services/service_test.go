package services

import (
	"fmt"
	"testing"

	"github.com/careerlane/job-portal/internal/auth"
	"github.com/careerlane/job-portal/internal/dtos"
	"github.com/careerlane/job-portal/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database. The DSN is keyed
// by test name so parallel tests never share a schema, and
// cache=shared keeps gorm's pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)
	user := &models.User{
		Name:     "Test " + role,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createJob(t *testing.T, db *gorm.DB, svc *JobService, recruiterID uint, title string, salary float64) *models.Job {
	t.Helper()
	job, err := svc.CreateJob(recruiterID, &dtos.JobCreationRequest{
		Title:       title,
		Description: "A job",
		Company:     "Acme",
		Location:    "Remote",
		Salary:      &salary,
		Skills:      []string{"go", "sql"},
	})
	require.NoError(t, err)
	return job
}

func ptr[T any](v T) *T { return &v }
