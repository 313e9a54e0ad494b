// Package services – JobService
//
// Job listing is the busiest filtered endpoint of the platform: free-text
// search across three columns, salary range bounds, remote flag, and exact
// job type, all composed as bound predicate fragments. Applications are the
// one place the taxonomy's ALREADY_EXISTS surfaces from a uniqueness
// constraint rather than an explicit lookup.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/talentlink/go-match-backend/internal/apierr"
	"github.com/talentlink/go-match-backend/internal/domain"
	"github.com/talentlink/go-match-backend/internal/repo"
)

// JobListParams are the recognized query parameters of the job list
// endpoint, parsed and range-checked by the handler. Nil pointers mean
// "absent" and contribute no predicate.
type JobListParams struct {
	Page       int
	Limit      int
	JobType    string
	Search     string
	SalaryMin  *int
	SalaryMax  *int
	RemoteWork *bool
}

// JobService provides job CRUD, filtered listing, and applications.
type JobService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List returns one page of jobs matching the params plus the total match
// count.
//
// Salary bounds use overlap semantics against the posting's disclosed
// range: salaryMin keeps postings whose salary_max reaches it, salaryMax
// keeps postings whose salary_min fits under it. Postings that do not
// disclose the relevant bound are excluded by that predicate.
func (s *JobService) List(ctx context.Context, p JobListParams) ([]domain.Job, int64, error) {
	f := &repo.Filter{}
	if p.JobType != "" {
		f.Eq("job_type", p.JobType)
	}
	if p.Search != "" {
		f.Search(p.Search, "title", "company", "description")
	}
	if p.SalaryMin != nil {
		f.Gte("salary_max", *p.SalaryMin)
	}
	if p.SalaryMax != nil {
		f.Lte("salary_min", *p.SalaryMax)
	}
	if p.RemoteWork != nil {
		f.Eq("remote_work", *p.RemoteWork)
	}

	offset := (p.Page - 1) * p.Limit
	items, total, err := repo.ListJobsPage(ctx, s.DB, f, offset, p.Limit)
	if err != nil {
		return nil, 0, apierr.Database(err)
	}
	return items, total, nil
}

// Get returns a job by ID, or NOT_FOUND.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	j, err := repo.GetJob(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apierr.New(apierr.CodeNotFound, "job not found")
		}
		return nil, apierr.Database(err)
	}
	return j, nil
}

// Create validates and persists a new job posting owned by employerID.
func (s *JobService) Create(ctx context.Context, employerID string, j *domain.Job) (*domain.Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	if j.Title == "" {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "title is required")
	}
	if j.Company == "" {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "company is required")
	}
	if j.JobType == "" {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "job_type is required")
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return nil, apierr.New(apierr.CodeValidationError, "salary_min must not exceed salary_max")
	}
	j.EmployerID = employerID
	if err := repo.CreateJob(ctx, s.DB, j); err != nil {
		return nil, apierr.Database(err)
	}
	return j, nil
}

// Update applies the given column updates to a job owned by employerID.
func (s *JobService) Update(ctx context.Context, id, employerID string, updates map[string]any) error {
	if len(updates) == 0 {
		return apierr.New(apierr.CodeInvalidInput, "no fields to update")
	}
	if err := repo.UpdateJob(ctx, s.DB, id, employerID, updates); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apierr.New(apierr.CodeNotFound, "job not found")
		}
		return apierr.Database(err)
	}
	return nil
}

// Delete removes a job owned by employerID.
func (s *JobService) Delete(ctx context.Context, id, employerID string) error {
	if err := repo.DeleteJob(ctx, s.DB, id, employerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apierr.New(apierr.CodeNotFound, "job not found")
		}
		return apierr.Database(err)
	}
	return nil
}

// Apply records userID applying to jobID. The job must exist; a repeat
// application by the same user yields ALREADY_EXISTS.
func (s *JobService) Apply(ctx context.Context, jobID, userID string) (*domain.Application, error) {
	if _, err := repo.GetJob(ctx, s.DB, jobID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apierr.New(apierr.CodeNotFound, "job not found")
		}
		return nil, apierr.Database(err)
	}
	a, err := repo.CreateApplication(ctx, s.DB, jobID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apierr.New(apierr.CodeAlreadyExists, "you have already applied to this job")
		}
		return nil, apierr.Database(err)
	}
	return a, nil
}
