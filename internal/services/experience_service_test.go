package services

import (
	"context"
	"testing"
	"time"

	"github.com/talentlink/go-match-backend/internal/apierr"
	"github.com/talentlink/go-match-backend/internal/domain"
)

func TestExperienceCreate_Validation(t *testing.T) {
	svc := &ExperienceService{DB: newServiceDB(t, &domain.Experience{})}
	ctx := context.Background()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Create(ctx, "u1", &domain.Experience{Company: "C", StartDate: start}); !apierr.Is(err, apierr.CodeMissingRequiredField) {
		t.Fatalf("missing title: %v", err)
	}
	if _, err := svc.Create(ctx, "u1", &domain.Experience{Title: "T", StartDate: start}); !apierr.Is(err, apierr.CodeMissingRequiredField) {
		t.Fatalf("missing company: %v", err)
	}
	if _, err := svc.Create(ctx, "u1", &domain.Experience{Title: "T", Company: "C"}); !apierr.Is(err, apierr.CodeMissingRequiredField) {
		t.Fatalf("missing start_date: %v", err)
	}

	before := start.Add(-24 * time.Hour)
	if _, err := svc.Create(ctx, "u1", &domain.Experience{Title: "T", Company: "C", StartDate: start, EndDate: &before}); !apierr.Is(err, apierr.CodeValidationError) {
		t.Fatalf("end before start: %v", err)
	}

	e, err := svc.Create(ctx, "u1", &domain.Experience{Title: "T", Company: "C", StartDate: start})
	if err != nil {
		t.Fatalf("valid create: %v", err)
	}
	if e.UserID != "u1" || e.EndDate != nil {
		t.Fatalf("experience=%+v", e)
	}
}

func TestExperienceList_PaginatedNewestFirst(t *testing.T) {
	db := newServiceDB(t, &domain.Experience{})
	svc := &ExperienceService{DB: db}
	ctx := context.Background()

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		e := domain.Experience{
			ID: string(rune('a' + i)), UserID: "u1", Title: "T", Company: "C",
			StartDate: base, CreatedAt: base.AddDate(0, i, 0),
		}
		if err := db.Create(&e).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	items, total, err := svc.List(ctx, "u1", 1, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(items) != 2 || items[0].ID != "c" {
		t.Fatalf("total=%d len=%d first=%s", total, len(items), items[0].ID)
	}

	// Other users see nothing.
	_, total, err = svc.List(ctx, "u2", 1, 10)
	if err != nil || total != 0 {
		t.Fatalf("scope: total=%d err=%v", total, err)
	}
}

func TestExperienceUpdateDelete_Ownership(t *testing.T) {
	svc := &ExperienceService{DB: newServiceDB(t, &domain.Experience{})}
	ctx := context.Background()
	start := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)

	e, err := svc.Create(ctx, "u1", &domain.Experience{Title: "T", Company: "C", StartDate: start})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Update(ctx, e.ID, "u2", map[string]any{"title": "X"}); !apierr.Is(err, apierr.CodeNotFound) {
		t.Fatalf("cross-user update: %v", err)
	}
	if err := svc.Update(ctx, e.ID, "u1", nil); !apierr.Is(err, apierr.CodeInvalidInput) {
		t.Fatalf("empty updates: %v", err)
	}
	if err := svc.Update(ctx, e.ID, "u1", map[string]any{"title": "X"}); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if err := svc.Delete(ctx, e.ID, "u2"); !apierr.Is(err, apierr.CodeNotFound) {
		t.Fatalf("cross-user delete: %v", err)
	}
	if err := svc.Delete(ctx, e.ID, "u1"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}
