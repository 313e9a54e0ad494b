// Package services defines the business logic for the platform's resources.
// Services validate inputs, enforce ownership and role rules, compose list
// filters, and classify persistence failures into the API error taxonomy.
// They are the only place a raw database error is turned into a client-safe
// DB_ERROR; handlers never see gorm errors.
//
// This file implements the CourseService.
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

// courseTypes is the enumerated mapping accepted by the course_type filter
// and by course creation. Values map to the stored column value.
var courseTypes = map[string]string{
	"video":   "video",
	"live":    "live",
	"offline": "offline",
}

// CourseListParams are the recognized query parameters of the course list
// endpoint, already parsed and range-checked by the handler. Zero values
// mean "absent" and contribute no predicate.
type CourseListParams struct {
	Page       int
	Limit      int
	CourseType string
	Search     string
}

// CourseService provides course CRUD and filtered listing.
type CourseService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List returns one page of courses matching the params plus the total match
// count. Each present filter parameter narrows the result set; absent ones
// are ignored.
func (s *CourseService) List(ctx context.Context, p CourseListParams) ([]domain.Course, int64, error) {
	f := &repo.Filter{}
	if p.CourseType != "" {
		stored, ok := courseTypes[p.CourseType]
		if !ok {
			return nil, 0, apierr.New(apierr.CodeInvalidInput, "unknown course_type").
				WithDetails(map[string]any{"course_type": p.CourseType})
		}
		f.Eq("course_type", stored)
	}
	if p.Search != "" {
		f.Search(p.Search, "title", "description")
	}

	offset := (p.Page - 1) * p.Limit
	items, total, err := repo.ListCoursesPage(ctx, s.DB, f, offset, p.Limit)
	if err != nil {
		return nil, 0, apierr.Database(err)
	}
	return items, total, nil
}

// Get returns a course by ID, or NOT_FOUND.
func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	c, err := repo.GetCourse(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apierr.New(apierr.CodeNotFound, "course not found")
		}
		return nil, apierr.Database(err)
	}
	return c, nil
}

// Create validates and persists a new course owned by instructorID.
func (s *CourseService) Create(ctx context.Context, instructorID string, c *domain.Course) (*domain.Course, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "title is required")
	}
	if _, ok := courseTypes[c.CourseType]; !ok {
		return nil, apierr.New(apierr.CodeValidationError, "unknown course_type").
			WithDetails(map[string]any{"course_type": c.CourseType})
	}
	if c.Price < 0 {
		return nil, apierr.New(apierr.CodeValidationError, "price must not be negative")
	}
	c.InstructorID = instructorID
	if err := repo.CreateCourse(ctx, s.DB, c); err != nil {
		return nil, apierr.Database(err)
	}
	return c, nil
}

// Update applies the non-nil fields to a course owned by instructorID.
func (s *CourseService) Update(ctx context.Context, id, instructorID string, updates map[string]any) error {
	if len(updates) == 0 {
		return apierr.New(apierr.CodeInvalidInput, "no fields to update")
	}
	if ct, ok := updates["course_type"].(string); ok {
		if _, known := courseTypes[ct]; !known {
			return apierr.New(apierr.CodeValidationError, "unknown course_type").
				WithDetails(map[string]any{"course_type": ct})
		}
	}
	if err := repo.UpdateCourse(ctx, s.DB, id, instructorID, updates); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apierr.New(apierr.CodeNotFound, "course not found")
		}
		return apierr.Database(err)
	}
	return nil
}

// Delete removes a course owned by instructorID.
func (s *CourseService) Delete(ctx context.Context, id, instructorID string) error {
	if err := repo.DeleteCourse(ctx, s.DB, id, instructorID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apierr.New(apierr.CodeNotFound, "course not found")
		}
		return apierr.Database(err)
	}
	return nil
}
