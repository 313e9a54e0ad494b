// Package services – ExperienceService
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

// ExperienceService provides work-history CRUD for the owning user.
type ExperienceService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List returns one page of the user's experiences, newest first.
func (s *ExperienceService) List(ctx context.Context, userID string, page, limit int) ([]domain.Experience, int64, error) {
	offset := (page - 1) * limit
	items, total, err := repo.ListExperiencesPage(ctx, s.DB, userID, offset, limit)
	if err != nil {
		return nil, 0, apierr.Database(err)
	}
	return items, total, nil
}

// Create validates and persists a new experience entry for userID.
func (s *ExperienceService) Create(ctx context.Context, userID string, e *domain.Experience) (*domain.Experience, error) {
	e.Title = strings.TrimSpace(e.Title)
	e.Company = strings.TrimSpace(e.Company)
	if e.Title == "" {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "title is required")
	}
	if e.Company == "" {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "company is required")
	}
	if e.StartDate.IsZero() {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "start_date is required")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return nil, apierr.New(apierr.CodeValidationError, "end_date must not precede start_date")
	}
	e.UserID = userID
	if err := repo.CreateExperience(ctx, s.DB, e); err != nil {
		return nil, apierr.Database(err)
	}
	return e, nil
}

// Update applies the given column updates to an experience owned by userID.
func (s *ExperienceService) Update(ctx context.Context, id, userID string, updates map[string]any) error {
	if len(updates) == 0 {
		return apierr.New(apierr.CodeInvalidInput, "no fields to update")
	}
	if err := repo.UpdateExperience(ctx, s.DB, id, userID, updates); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apierr.New(apierr.CodeNotFound, "experience not found")
		}
		return apierr.Database(err)
	}
	return nil
}

// Delete removes an experience owned by userID.
func (s *ExperienceService) Delete(ctx context.Context, id, userID string) error {
	if err := repo.DeleteExperience(ctx, s.DB, id, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apierr.New(apierr.CodeNotFound, "experience not found")
		}
		return apierr.Database(err)
	}
	return nil
}
