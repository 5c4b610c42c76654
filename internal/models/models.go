package models

import (
	"time"

	"gorm.io/datatypes"
)

// Role values stored on User. Admin exists in the enum but no route
// requires it yet.
const (
	RoleUser      = "user"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

type ApplicationStatus string

const (
	StatusApplied  ApplicationStatus = "applied"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the four known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// bcrypt hash, never serialized
	Password    string `gorm:"not null" json:"-"`
	Role        string `gorm:"default:'user'" json:"role"`
	CompanyName string `json:"company_name,omitempty"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Company     string  `gorm:"not null" json:"company"`
	Location    string  `json:"location"`
	Salary      float64 `json:"salary"`
	// JSON column so the same model works on postgres and sqlite
	Skills datatypes.JSONSlice[string] `json:"skills"`

	// Set once at creation, never reassigned afterwards.
	RecruiterID uint `gorm:"not null;index" json:"recruiter_id"`
	// Association: GORM needs Preload() to fill this
	Recruiter User `gorm:"foreignKey:RecruiterID" json:"recruiter"`
}

// Application links one applicant to one job. Withdraw is a hard delete,
// so the composite unique index keeps exactly one live row per
// (job, applicant) pair even under concurrent applies.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID uint `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID" json:"job"`

	ApplicantID uint `gorm:"not null;index;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	Applicant   User `gorm:"foreignKey:ApplicantID" json:"applicant"`

	Status ApplicationStatus `gorm:"default:'applied'" json:"status"`
}
