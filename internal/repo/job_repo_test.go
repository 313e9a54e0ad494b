package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/talentlink/go-match-backend/internal/domain"
)

func TestCreateApplication_DuplicateRejected(t *testing.T) {
	db := newTestDB(t, &domain.Job{}, &domain.Application{})

	j := &domain.Job{Title: "T", Company: "C", Description: "D", JobType: "full_time", EmployerID: "e1"}
	if err := CreateJob(context.Background(), db, j); err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	a, err := CreateApplication(context.Background(), db, j.ID, "u1")
	if err != nil {
		t.Fatalf("first application: %v", err)
	}
	if a.Status != "pending" || a.JobID != j.ID || a.UserID != "u1" {
		t.Fatalf("unexpected application: %+v", a)
	}

	if _, err := CreateApplication(context.Background(), db, j.ID, "u1"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate should fail with ErrDuplicate, got %v", err)
	}

	// A different user may still apply.
	if _, err := CreateApplication(context.Background(), db, j.ID, "u2"); err != nil {
		t.Fatalf("other user: %v", err)
	}
}

func TestUpdateJob_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t, &domain.Job{})
	j := &domain.Job{ID: "j1", Title: "Old", Company: "C", Description: "D", JobType: "full_time", EmployerID: "e1", CreatedAt: time.Now().UTC()}
	if err := db.Create(j).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := UpdateJob(context.Background(), db, "j1", "e2", map[string]any{"title": "New"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong owner: %v", err)
	}
	if err := UpdateJob(context.Background(), db, "j1", "e1", map[string]any{"title": "New"}); err != nil {
		t.Fatalf("owner: %v", err)
	}
}

func TestDeleteJob_NotFoundWhenMissing(t *testing.T) {
	db := newTestDB(t, &domain.Job{})
	if err := DeleteJob(context.Background(), db, "nope", "e1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListJobsPage_SalaryOverlapSemantics(t *testing.T) {
	db := newTestDB(t, &domain.Job{})
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	seed := func(id string, min, max int) {
		j := domain.Job{ID: id, Title: "T", Company: "C", Description: "D", JobType: "full_time",
			SalaryMin: intp(min), SalaryMax: intp(max), EmployerID: "e1", CreatedAt: base}
		if err := db.Create(&j).Error; err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}
	seed("low", 20000, 35000)
	seed("mid", 40000, 70000)
	seed("high", 80000, 120000)

	// Requested floor of 50k keeps postings whose maximum reaches it.
	f := (&Filter{}).Gte("salary_max", 50000)
	items, total, err := ListJobsPage(context.Background(), db, f, 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Fatalf("floor: total=%d", total)
	}
	for _, j := range items {
		if j.ID == "low" {
			t.Fatal("low posting should be excluded")
		}
	}

	// Adding a ceiling keeps postings whose minimum fits under it.
	f.Lte("salary_min", 60000)
	_, total, err = ListJobsPage(context.Background(), db, f, 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 {
		t.Fatalf("band: total=%d", total)
	}
}
