// Package domain defines the persistence models of the education and
// job-matching platform: users, courses, job postings, job applications,
// documents, and work experiences. These types are mapped with GORM and
// form the data layer every repository operates on.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// User is an account on the platform. UserType decides what the account can
// do (see auth role constants): job seekers apply to jobs and manage their
// documents and experiences, employers post jobs, instructors publish
// courses, and admins can do everything.
//
// PasswordHash stores the bcrypt hash; the plaintext never touches a model.
type User struct {
	ID           string         `json:"id"            gorm:"type:char(36);primaryKey"`
	Email        string         `json:"email"         gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string         `json:"-"             gorm:"type:varchar(255);not null"`
	Name         string         `json:"name"          gorm:"type:varchar(255);not null"`
	UserType     string         `json:"user_type"     gorm:"type:varchar(32);not null;check:user_type IN ('job_seeker','employer','instructor','admin')"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"             gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Course is a published course listing. CourseType is one of the enumerated
// delivery formats ("video", "live", "offline"); list filtering validates
// incoming values against that enumeration before any query runs.
type Course struct {
	ID           string         `json:"id"            gorm:"type:char(36);primaryKey"`
	Title        string         `json:"title"         gorm:"type:varchar(255);not null"`
	Description  string         `json:"description"   gorm:"type:text;not null"`
	CourseType   string         `json:"course_type"   gorm:"type:varchar(32);not null;index"`
	Price        float64        `json:"price"         gorm:"not null;default:0"`
	InstructorID string         `json:"instructor_id" gorm:"type:char(36);not null;index"`
	CreatedAt    time.Time      `json:"created_at"    gorm:"index"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"             gorm:"index"`
}

// TableName returns the database table name for Course.
func (Course) TableName() string { return "courses" }

// Job is a job posting created by an employer. Salary bounds are optional
// (nil when the posting does not disclose them) and are matched with
// overlap semantics by the list filter: salaryMin keeps postings whose
// maximum reaches it, salaryMax keeps postings whose minimum fits under it.
type Job struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	Title       string         `json:"title"       gorm:"type:varchar(255);not null"`
	Company     string         `json:"company"     gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Location    string         `json:"location"    gorm:"type:varchar(255)"`
	JobType     string         `json:"job_type"    gorm:"type:varchar(32);not null;index"`
	SalaryMin   *int           `json:"salary_min,omitempty"`
	SalaryMax   *int           `json:"salary_max,omitempty"`
	RemoteWork  bool           `json:"remote_work" gorm:"not null;default:false"`
	EmployerID  string         `json:"employer_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time      `json:"created_at"  gorm:"index"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for Job.
func (Job) TableName() string { return "jobs" }

// Application records a job seeker applying to a job. A user can apply to a
// given job at most once (unique index), which surfaces as ALREADY_EXISTS
// at the API boundary.
type Application struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	JobID     string         `json:"job_id"     gorm:"type:char(36);not null;index;uniqueIndex:ux_application_job_user"`
	UserID    string         `json:"user_id"    gorm:"type:char(36);not null;index;uniqueIndex:ux_application_job_user"`
	Status    string         `json:"status"     gorm:"type:varchar(32);not null;default:'pending'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`

	// Job is the posting applied to; applications go away with it.
	Job Job `json:"-" gorm:"foreignKey:JobID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Application.
func (Application) TableName() string { return "applications" }

// Document is user-owned file metadata (resume, certificate, transcript).
// The file body lives in object storage; FileURL points at it. Upload and
// deletion of the stored object are handled outside this service.
type Document struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"user_id"    gorm:"type:char(36);not null;index"`
	Title     string         `json:"title"      gorm:"type:varchar(255);not null"`
	Category  string         `json:"category"   gorm:"type:varchar(64);not null;index"`
	FileURL   string         `json:"file_url"   gorm:"type:varchar(1024);not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Document.
func (Document) TableName() string { return "documents" }

// Experience is one entry of a job seeker's work history. EndDate is nil
// for a current position.
type Experience struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID      string         `json:"user_id"     gorm:"type:char(36);not null;index"`
	Title       string         `json:"title"       gorm:"type:varchar(255);not null"`
	Company     string         `json:"company"     gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text"`
	StartDate   time.Time      `json:"start_date"  gorm:"not null"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	CreatedAt   time.Time      `json:"created_at"  gorm:"index"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for Experience.
func (Experience) TableName() string { return "experiences" }
