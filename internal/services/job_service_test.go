package services

import (
	"context"
	"testing"
	"time"

	"github.com/talentlink/go-match-backend/internal/apierr"
	"github.com/talentlink/go-match-backend/internal/domain"
)

func TestJobCreate_Validation(t *testing.T) {
	svc := &JobService{DB: newServiceDB(t, &domain.Job{})}
	ctx := context.Background()

	if _, err := svc.Create(ctx, "e1", &domain.Job{Company: "C", JobType: "full_time"}); !apierr.Is(err, apierr.CodeMissingRequiredField) {
		t.Fatalf("missing title: %v", err)
	}
	if _, err := svc.Create(ctx, "e1", &domain.Job{Title: "T", JobType: "full_time"}); !apierr.Is(err, apierr.CodeMissingRequiredField) {
		t.Fatalf("missing company: %v", err)
	}
	if _, err := svc.Create(ctx, "e1", &domain.Job{Title: "T", Company: "C"}); !apierr.Is(err, apierr.CodeMissingRequiredField) {
		t.Fatalf("missing job_type: %v", err)
	}
	if _, err := svc.Create(ctx, "e1", &domain.Job{
		Title: "T", Company: "C", JobType: "full_time",
		SalaryMin: intp(90000), SalaryMax: intp(50000),
	}); !apierr.Is(err, apierr.CodeValidationError) {
		t.Fatalf("inverted salary band: %v", err)
	}

	j, err := svc.Create(ctx, "e1", &domain.Job{Title: "T", Company: "C", JobType: "full_time"})
	if err != nil {
		t.Fatalf("valid create: %v", err)
	}
	if j.EmployerID != "e1" {
		t.Fatalf("owner not assigned: %+v", j)
	}
}

func TestJobApply_LifecycleAndDuplicate(t *testing.T) {
	svc := &JobService{DB: newServiceDB(t, &domain.Job{}, &domain.Application{})}
	ctx := context.Background()

	if _, err := svc.Apply(ctx, "missing-job", "u1"); !apierr.Is(err, apierr.CodeNotFound) {
		t.Fatalf("missing job: %v", err)
	}

	j, err := svc.Create(ctx, "e1", &domain.Job{Title: "T", Company: "C", JobType: "full_time"})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	a, err := svc.Apply(ctx, j.ID, "u1")
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if a.Status != "pending" {
		t.Fatalf("status=%q", a.Status)
	}

	if _, err := svc.Apply(ctx, j.ID, "u1"); !apierr.Is(err, apierr.CodeAlreadyExists) {
		t.Fatalf("second apply: %v", err)
	}
}

func TestJobList_ComposedFilters(t *testing.T) {
	db := newServiceDB(t, &domain.Job{})
	svc := &JobService{DB: db}
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	seed := func(id, title, jobType string, min, max int, remote bool) {
		j := domain.Job{
			ID: id, Title: title, Company: "Acme", Description: "d", JobType: jobType,
			SalaryMin: intp(min), SalaryMax: intp(max), RemoteWork: remote,
			EmployerID: "e1", CreatedAt: base,
		}
		if err := db.Create(&j).Error; err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}
	seed("j1", "Go Developer", "full_time", 50000, 90000, true)
	seed("j2", "Go Developer", "full_time", 30000, 45000, false)
	seed("j3", "Designer", "part_time", 50000, 90000, true)

	remote := true
	_, total, err := svc.List(ctx, JobListParams{
		Page: 1, Limit: 10,
		JobType:    "full_time",
		Search:     "go",
		SalaryMin:  intp(48000),
		RemoteWork: &remote,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 {
		t.Fatalf("total=%d", total)
	}

	// No filters matches everything.
	_, total, err = svc.List(ctx, JobListParams{Page: 1, Limit: 10})
	if err != nil || total != 3 {
		t.Fatalf("unfiltered: total=%d err=%v", total, err)
	}
}

func TestJobUpdate_NotFoundForWrongOwner(t *testing.T) {
	svc := &JobService{DB: newServiceDB(t, &domain.Job{})}
	ctx := context.Background()

	j, err := svc.Create(ctx, "e1", &domain.Job{Title: "T", Company: "C", JobType: "full_time"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Update(ctx, j.ID, "e2", map[string]any{"title": "X"}); !apierr.Is(err, apierr.CodeNotFound) {
		t.Fatalf("wrong owner should read as NOT_FOUND: %v", err)
	}
	if err := svc.Update(ctx, j.ID, "e1", map[string]any{"title": "X"}); err != nil {
		t.Fatalf("owner update: %v", err)
	}
}
