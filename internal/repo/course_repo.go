// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Course
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a course is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated; classification into the API error
//     taxonomy happens in the service layer.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlink/go-match-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateCourse inserts a new Course row owned by instructorID.
// The course ID is a randomly generated UUID and CreatedAt is set to UTC.
func CreateCourse(ctx context.Context, db *gorm.DB, c *domain.Course) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(c).Error
}

// CountCourses returns the number of courses matching the filter.
func CountCourses(ctx context.Context, db *gorm.DB, f *Filter) (int64, error) {
	var total int64
	err := f.Apply(db.WithContext(ctx).Model(&domain.Course{})).Count(&total).Error
	return total, err
}

// ListCoursesPage returns one page of courses under the filter together with
// the total match count, ordered newest first with the id tie-break.
func ListCoursesPage(ctx context.Context, db *gorm.DB, f *Filter, offset, limit int) ([]domain.Course, int64, error) {
	out := []domain.Course{}
	total, err := countAndPage(db.WithContext(ctx), f, &domain.Course{}, &out, offset, limit)
	return out, total, err
}

// GetCourse fetches a single course by ID, or ErrNotFound if missing.
func GetCourse(ctx context.Context, db *gorm.DB, id string) (*domain.Course, error) {
	var c domain.Course
	if err := db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCourse applies the given column updates to a course owned by
// instructorID. Returns ErrNotFound when the course is missing or owned by
// someone else.
func UpdateCourse(ctx context.Context, db *gorm.DB, id, instructorID string, updates map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Course{}).
		Where("id = ? AND instructor_id = ?", id, instructorID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCourse soft-deletes a course owned by instructorID. Returns
// ErrNotFound when nothing was deleted.
func DeleteCourse(ctx context.Context, db *gorm.DB, id, instructorID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND instructor_id = ?", id, instructorID).
		Delete(&domain.Course{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
