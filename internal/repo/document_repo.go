// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Document
// model. Documents are always scoped to their owner: every query carries a
// user_id predicate in addition to whatever the caller's filter adds.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlink/go-match-backend/internal/domain"
)

// CreateDocument inserts a new Document row owned by userID.
func CreateDocument(ctx context.Context, db *gorm.DB, d *domain.Document) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(d).Error
}

// ListDocumentsPage returns one page of the user's documents under the
// filter together with the total match count.
func ListDocumentsPage(ctx context.Context, db *gorm.DB, userID string, f *Filter, offset, limit int) ([]domain.Document, int64, error) {
	scoped := db.WithContext(ctx).Where("user_id = ?", userID)
	out := []domain.Document{}
	total, err := countAndPage(scoped, f, &domain.Document{}, &out, offset, limit)
	return out, total, err
}

// GetDocument fetches a single document by ID and owner, or ErrNotFound.
func GetDocument(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Document, error) {
	var d domain.Document
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDocument soft-deletes a document owned by userID. Returns
// ErrNotFound when nothing was deleted.
func DeleteDocument(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
