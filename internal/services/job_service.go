package services

import (
	"errors"

	"github.com/careerlane/job-portal/internal/dtos"
	"github.com/careerlane/job-portal/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// publicUserFields limits preloaded user associations to what clients
// are allowed to see.
func publicUserFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func (s *JobService) CreateJob(recruiterID uint, req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      *req.Salary,
		Skills:      datatypes.NewJSONSlice(req.Skills),
		RecruiterID: recruiterID,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobs() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Preload("Recruiter", publicUserFields).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) GetJob(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.Preload("Recruiter", publicUserFields).First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// UpdateJob applies a partial update on behalf of the owning recruiter.
// Only fields present in the request overwrite; see JobUpdateRequest.
func (s *JobService) UpdateJob(id, requesterID uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.RecruiterID != requesterID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Skills != nil {
		job.Skills = datatypes.NewJSONSlice(*req.Skills)
	}

	if err := s.DB.Save(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes the job and its applications together, so no
// application is left pointing at a job that no longer exists.
func (s *JobService) DeleteJob(id, requesterID uint) error {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if job.RecruiterID != requesterID {
		return ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
}
