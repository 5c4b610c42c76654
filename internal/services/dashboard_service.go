package services

import (
	"github.com/careerlane/job-portal/internal/models"
	"gorm.io/gorm"
)

const recentLimit = 5

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		DB: db,
	}
}

type UserDashboardStats struct {
	TotalApplications    int `json:"totalApplications"`
	PendingApplications  int `json:"pendingApplications"`
	ReviewedApplications int `json:"reviewedApplications"`
	AcceptedApplications int `json:"acceptedApplications"`
	RejectedApplications int `json:"rejectedApplications"`
}

type UserDashboard struct {
	Stats              UserDashboardStats   `json:"stats"`
	RecentApplications []models.Application `json:"recentApplications"`
}

type RecruiterDashboardStats struct {
	TotalJobs         int `json:"totalJobs"`
	TotalApplications int `json:"totalApplications"`
}

type RecruiterDashboard struct {
	Stats              RecruiterDashboardStats `json:"stats"`
	RecentApplications []models.Application    `json:"recentApplications"`
}

// jobSummaryFields mirrors what the applicant-facing views need from a
// job without dragging the whole posting along.
func jobSummaryFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title", "location", "salary", "company")
}

// UserDashboard partitions the applicant's applications by status
// ("pending" counts the ones still in applied) and returns the newest
// five with their job summaries.
func (s *DashboardService) UserDashboard(applicantID uint) (*UserDashboard, error) {
	var applications []models.Application
	err := s.DB.Where("applicant_id = ?", applicantID).
		Preload("Job", jobSummaryFields).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}

	stats := UserDashboardStats{TotalApplications: len(applications)}
	for _, application := range applications {
		switch application.Status {
		case models.StatusApplied:
			stats.PendingApplications++
		case models.StatusReviewed:
			stats.ReviewedApplications++
		case models.StatusAccepted:
			stats.AcceptedApplications++
		case models.StatusRejected:
			stats.RejectedApplications++
		}
	}

	return &UserDashboard{
		Stats:              stats,
		RecentApplications: applications[:min(recentLimit, len(applications))],
	}, nil
}

// RecruiterDashboard totals the recruiter's jobs and the applications
// against them, plus the five newest applications across all jobs.
// Reads are best-effort: a job deleted mid-aggregation may or may not
// show up.
func (s *DashboardService) RecruiterDashboard(recruiterID uint) (*RecruiterDashboard, error) {
	var jobs []models.Job
	if err := s.DB.Where("recruiter_id = ?", recruiterID).Find(&jobs).Error; err != nil {
		return nil, err
	}

	jobIDs := make([]uint, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}

	applications := []models.Application{}
	if len(jobIDs) > 0 {
		err := s.DB.Where("job_id IN ?", jobIDs).
			Preload("Job", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title") }).
			Preload("Applicant", publicUserFields).
			Order("created_at DESC").
			Find(&applications).Error
		if err != nil {
			return nil, err
		}
	}

	return &RecruiterDashboard{
		Stats: RecruiterDashboardStats{
			TotalJobs:         len(jobs),
			TotalApplications: len(applications),
		},
		RecentApplications: applications[:min(recentLimit, len(applications))],
	}, nil
}
