// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Job and
// Application models.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlink/go-match-backend/internal/domain"
)

// CreateJob inserts a new Job row owned by employerID.
func CreateJob(ctx context.Context, db *gorm.DB, j *domain.Job) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	j.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(j).Error
}

// CountJobs returns the number of jobs matching the filter.
func CountJobs(ctx context.Context, db *gorm.DB, f *Filter) (int64, error) {
	var total int64
	err := f.Apply(db.WithContext(ctx).Model(&domain.Job{})).Count(&total).Error
	return total, err
}

// ListJobsPage returns one page of jobs under the filter together with the
// total match count, ordered newest first with the id tie-break.
func ListJobsPage(ctx context.Context, db *gorm.DB, f *Filter, offset, limit int) ([]domain.Job, int64, error) {
	out := []domain.Job{}
	total, err := countAndPage(db.WithContext(ctx), f, &domain.Job{}, &out, offset, limit)
	return out, total, err
}

// GetJob fetches a single job by ID, or ErrNotFound if missing.
func GetJob(ctx context.Context, db *gorm.DB, id string) (*domain.Job, error) {
	var j domain.Job
	if err := db.WithContext(ctx).Where("id = ?", id).First(&j).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

// UpdateJob applies the given column updates to a job owned by employerID.
// Returns ErrNotFound when the job is missing or owned by someone else.
func UpdateJob(ctx context.Context, db *gorm.DB, id, employerID string, updates map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Job{}).
		Where("id = ? AND employer_id = ?", id, employerID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteJob soft-deletes a job owned by employerID. Returns ErrNotFound when
// nothing was deleted.
func DeleteJob(ctx context.Context, db *gorm.DB, id, employerID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND employer_id = ?", id, employerID).
		Delete(&domain.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

// CreateApplication records userID applying to jobID. A second application
// to the same job by the same user trips the unique index and is reported
// as ErrDuplicate so the service layer can map it to ALREADY_EXISTS.
func CreateApplication(ctx context.Context, db *gorm.DB, jobID, userID string) (*domain.Application, error) {
	a := &domain.Application{
		ID:        uuid.NewString(),
		JobID:     jobID,
		UserID:    userID,
		Status:    "pending",
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return a, nil
}

// isUniqueViolation detects uniqueness-constraint failures across drivers.
// gorm surfaces gorm.ErrDuplicatedKey for drivers that translate errors;
// the pure-Go sqlite driver reports the constraint in the message.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(strings.ToUpper(err.Error()), "UNIQUE")
}
