// Job HTTP handlers.
//
// This file exposes REST endpoints for job postings and applications:
//   - GET    /jobs                  (public, filtered + paginated)
//   - GET    /jobs/:id              (public)
//   - POST   /jobs                  (employer/admin)
//   - PUT    /jobs/:id              (owning employer/admin)
//   - DELETE /jobs/:id              (owning employer/admin)
//   - POST   /jobs/:id/applications (job seeker)
//
// Recognized list filters: job_type (exact), search (substring over
// title/company/description), salaryMin/salaryMax (range bounds),
// remoteWork (boolean). Each present filter narrows the result set.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/talentlink/go-match-backend/internal/apierr"
	"github.com/talentlink/go-match-backend/internal/auth"
	"github.com/talentlink/go-match-backend/internal/domain"
	"github.com/talentlink/go-match-backend/internal/services"
)

// defaultJobLimit is the page size when the job list request does not
// specify one.
const defaultJobLimit = 20

// CreateJobRequest is the JSON payload for posting a job.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Location    string `json:"location"`
	JobType     string `json:"job_type"`
	SalaryMin   *int   `json:"salary_min"`
	SalaryMax   *int   `json:"salary_max"`
	RemoteWork  bool   `json:"remote_work"`
}

// UpdateJobRequest is the JSON payload for editing a posting. Only the
// fields present are applied.
type UpdateJobRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	JobType     *string `json:"job_type"`
	SalaryMin   *int    `json:"salary_min"`
	SalaryMax   *int    `json:"salary_max"`
	RemoteWork  *bool   `json:"remote_work"`
}

// ListJobs returns a filtered, paginated page of job postings.
func (h *Handlers) ListJobs(c *gin.Context) error {
	page, limit, err := parsePage(c, defaultJobLimit)
	if err != nil {
		return err
	}
	salaryMin, err := queryInt(c, "salaryMin")
	if err != nil {
		return err
	}
	salaryMax, err := queryInt(c, "salaryMax")
	if err != nil {
		return err
	}
	remote, err := queryBool(c, "remoteWork")
	if err != nil {
		return err
	}

	items, total, err := h.jobs.List(c.Request.Context(), services.JobListParams{
		Page:       page,
		Limit:      limit,
		JobType:    c.Query("job_type"),
		Search:     c.Query("search"),
		SalaryMin:  salaryMin,
		SalaryMax:  salaryMax,
		RemoteWork: remote,
	})
	if err != nil {
		return err
	}

	ok(c, items, Meta(NewPageMeta(page, limit, total)))
	return nil
}

// GetJob returns a single job posting by ID.
func (h *Handlers) GetJob(c *gin.Context) error {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	ok(c, job, Extra{})
	return nil
}

// CreateJob publishes a new posting owned by the calling employer.
func (h *Handlers) CreateJob(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	if err := auth.CheckPermission(claims.Role, auth.RoleEmployer, auth.RoleAdmin); err != nil {
		return err
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apierr.New(apierr.CodeInvalidInput, "request body is not valid JSON")
	}

	job, err := h.jobs.Create(c.Request.Context(), claims.UserID, &domain.Job{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		RemoteWork:  req.RemoteWork,
	})
	if err != nil {
		return err
	}

	created(c, job, Message("job created"))
	return nil
}

// UpdateJob edits a posting owned by the calling employer.
func (h *Handlers) UpdateJob(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	if err := auth.CheckPermission(claims.Role, auth.RoleEmployer, auth.RoleAdmin); err != nil {
		return err
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apierr.New(apierr.CodeInvalidInput, "request body is not valid JSON")
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.JobType != nil {
		updates["job_type"] = *req.JobType
	}
	if req.SalaryMin != nil {
		updates["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		updates["salary_max"] = *req.SalaryMax
	}
	if req.RemoteWork != nil {
		updates["remote_work"] = *req.RemoteWork
	}

	if err := h.jobs.Update(c.Request.Context(), c.Param("id"), claims.UserID, updates); err != nil {
		return err
	}

	ok(c, gin.H{"id": c.Param("id")}, Message("job updated"))
	return nil
}

// DeleteJob removes a posting owned by the calling employer.
func (h *Handlers) DeleteJob(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	if err := auth.CheckPermission(claims.Role, auth.RoleEmployer, auth.RoleAdmin); err != nil {
		return err
	}
	if err := h.jobs.Delete(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	ok(c, gin.H{"id": c.Param("id")}, Message("job deleted"))
	return nil
}

// ApplyToJob records the calling job seeker's application to a posting.
func (h *Handlers) ApplyToJob(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	if err := auth.CheckPermission(claims.Role, auth.RoleJobSeeker); err != nil {
		return err
	}

	app, err := h.jobs.Apply(c.Request.Context(), c.Param("id"), claims.UserID)
	if err != nil {
		return err
	}

	created(c, app, Message("application submitted"))
	return nil
}
