// Package services – DocumentService
//
// Documents are strictly claims-scoped: every operation runs under the
// requesting user's ID, so one user can never list or delete another's
// files. The stored object itself lives in external storage; this service
// only manages the metadata rows.
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

// DocumentListParams are the recognized query parameters of the document
// list endpoint.
type DocumentListParams struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

// DocumentService provides document metadata CRUD for the owning user.
type DocumentService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List returns one page of the user's documents matching the params.
func (s *DocumentService) List(ctx context.Context, userID string, p DocumentListParams) ([]domain.Document, int64, error) {
	f := &repo.Filter{}
	if p.Category != "" {
		f.Eq("category", p.Category)
	}
	if p.Search != "" {
		f.Search(p.Search, "title")
	}

	offset := (p.Page - 1) * p.Limit
	items, total, err := repo.ListDocumentsPage(ctx, s.DB, userID, f, offset, p.Limit)
	if err != nil {
		return nil, 0, apierr.Database(err)
	}
	return items, total, nil
}

// Create validates and persists new document metadata for userID.
func (s *DocumentService) Create(ctx context.Context, userID string, d *domain.Document) (*domain.Document, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "title is required")
	}
	if strings.TrimSpace(d.FileURL) == "" {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "file_url is required")
	}
	if d.Category == "" {
		d.Category = "other"
	}
	d.UserID = userID
	if err := repo.CreateDocument(ctx, s.DB, d); err != nil {
		return nil, apierr.Database(err)
	}
	return d, nil
}

// Delete removes a document owned by userID.
func (s *DocumentService) Delete(ctx context.Context, id, userID string) error {
	if err := repo.DeleteDocument(ctx, s.DB, id, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apierr.New(apierr.CodeNotFound, "document not found")
		}
		return apierr.Database(err)
	}
	return nil
}
