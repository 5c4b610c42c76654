package services

import (
	"errors"

	"github.com/careerlane/job-portal/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// Apply submits an application for applicantID against jobID. The
// pre-check gives the common duplicate a friendly error; the composite
// unique index catches the concurrent one and gets mapped to the same
// error, so two racing applies can never both land.
func (s *ApplicationService) Apply(applicantID, jobID uint) (*models.Application, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var existing models.Application
	err := s.DB.Where("job_id = ? AND applicant_id = ?", jobID, applicantID).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateApplication
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.StatusApplied,
	}
	if err := s.DB.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}
	return application, nil
}

// ListForJob returns every application for the job, applicant attached.
// Only the recruiter who owns the job may call it.
func (s *ApplicationService) ListForJob(jobID, requesterID uint) ([]models.Application, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.RecruiterID != requesterID {
		return nil, ErrForbidden
	}

	var applications []models.Application
	if err := s.DB.Where("job_id = ?", jobID).Preload("Applicant", publicUserFields).Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// SetStatus moves an application to any of the four statuses. No
// ordering is enforced between them; the gates are the value set and
// ownership of the referenced job.
func (s *ApplicationService) SetStatus(applicationID, requesterID uint, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var application models.Application
	if err := s.DB.Preload("Job").First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if application.Job.RecruiterID != requesterID {
		return nil, ErrForbidden
	}

	application.Status = status
	if err := s.DB.Model(&application).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// Withdraw hard-deletes the application. Applicant-owner only; the
// freed (job, applicant) slot allows a later re-apply.
func (s *ApplicationService) Withdraw(applicationID, requesterID uint) error {
	var application models.Application
	if err := s.DB.First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if application.ApplicantID != requesterID {
		return ErrForbidden
	}
	return s.DB.Delete(&application).Error
}
