// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Experience
// model (a job seeker's work history). Like documents, experiences are
// always scoped to their owner.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlink/go-match-backend/internal/domain"
)

// CreateExperience inserts a new Experience row owned by userID.
func CreateExperience(ctx context.Context, db *gorm.DB, e *domain.Experience) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(e).Error
}

// ListExperiencesPage returns one page of the user's experiences together
// with the total count.
func ListExperiencesPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Experience, int64, error) {
	scoped := db.WithContext(ctx).Where("user_id = ?", userID)
	out := []domain.Experience{}
	total, err := countAndPage(scoped, &Filter{}, &domain.Experience{}, &out, offset, limit)
	return out, total, err
}

// UpdateExperience applies the given column updates to an experience owned
// by userID. Returns ErrNotFound when missing or owned by someone else.
func UpdateExperience(ctx context.Context, db *gorm.DB, id, userID string, updates map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Experience{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteExperience soft-deletes an experience owned by userID. Returns
// ErrNotFound when nothing was deleted.
func DeleteExperience(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Experience{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
