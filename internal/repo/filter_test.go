package repo

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talentlink/go-match-backend/internal/domain"
)

func newTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func seedJob(t *testing.T, db *gorm.DB, j domain.Job) {
	t.Helper()
	if err := db.Create(&j).Error; err != nil {
		t.Fatalf("seed job %s: %v", j.ID, err)
	}
}

func intp(n int) *int { return &n }

func TestFilter_EmptyMatchesEverything(t *testing.T) {
	db := newTestDB(t, &domain.Job{})
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		seedJob(t, db, domain.Job{
			ID: fmt.Sprintf("j%d", i), Title: "T", Company: "C", Description: "D",
			JobType: "full_time", EmployerID: "e1", CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	f := &Filter{}
	if !f.Empty() {
		t.Fatal("zero filter should be empty")
	}
	var total int64
	if err := f.Apply(db.Model(&domain.Job{})).Count(&total).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 3 {
		t.Fatalf("total=%d", total)
	}
}

func TestFilter_PredicatesNarrowMonotonically(t *testing.T) {
	db := newTestDB(t, &domain.Job{})
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seedJob(t, db, domain.Job{ID: "j1", Title: "Go Developer", Company: "Acme", Description: "backend", JobType: "full_time", SalaryMin: intp(50000), SalaryMax: intp(90000), RemoteWork: true, EmployerID: "e1", CreatedAt: base})
	seedJob(t, db, domain.Job{ID: "j2", Title: "Designer", Company: "Acme", Description: "visual", JobType: "full_time", SalaryMin: intp(40000), SalaryMax: intp(60000), EmployerID: "e1", CreatedAt: base.Add(time.Hour)})
	seedJob(t, db, domain.Job{ID: "j3", Title: "Go Intern", Company: "Beta", Description: "backend", JobType: "part_time", SalaryMin: intp(20000), SalaryMax: intp(30000), RemoteWork: true, EmployerID: "e2", CreatedAt: base.Add(2 * time.Hour)})

	count := func(f *Filter) int64 {
		var n int64
		if err := f.Apply(db.Model(&domain.Job{})).Count(&n).Error; err != nil {
			t.Fatalf("count: %v", err)
		}
		return n
	}

	// Each added predicate can only shrink the result set.
	f := &Filter{}
	n0 := count(f)
	f.Eq("job_type", "full_time")
	n1 := count(f)
	f.Search("go", "title", "company", "description")
	n2 := count(f)
	f.Gte("salary_max", 70000)
	n3 := count(f)

	if n0 != 3 || n1 != 2 || n2 != 1 || n3 != 1 {
		t.Fatalf("counts=%d,%d,%d,%d", n0, n1, n2, n3)
	}
	if n1 > n0 || n2 > n1 || n3 > n2 {
		t.Fatal("filters must narrow monotonically")
	}
}

func TestFilter_SearchIsCaseInsensitiveAndLiteral(t *testing.T) {
	db := newTestDB(t, &domain.Job{})
	seedJob(t, db, domain.Job{ID: "j1", Title: "100% Remote Role", Company: "Acme", Description: "x", JobType: "full_time", EmployerID: "e1", CreatedAt: time.Now().UTC()})
	seedJob(t, db, domain.Job{ID: "j2", Title: "Office Role", Company: "Acme", Description: "x", JobType: "full_time", EmployerID: "e1", CreatedAt: time.Now().UTC()})

	count := func(term string) int64 {
		f := (&Filter{}).Search(term, "title")
		var n int64
		if err := f.Apply(db.Model(&domain.Job{})).Count(&n).Error; err != nil {
			t.Fatalf("count: %v", err)
		}
		return n
	}

	if n := count("REMOTE"); n != 1 {
		t.Fatalf("case-insensitive search: n=%d", n)
	}
	// "%" must match literally, not as a wildcard.
	if n := count("100%"); n != 1 {
		t.Fatalf("literal %%: n=%d", n)
	}
	if n := count("100_"); n != 0 {
		t.Fatalf("literal _: n=%d", n)
	}
}

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"plain":   "plain",
		"50%":     `50\%`,
		"a_b":     `a\_b`,
		`back\sl`: `back\\sl`,
	}
	for in, want := range cases {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q)=%q want %q", in, got, want)
		}
	}
}

func TestCountAndPage_OrderingAndShortCircuit(t *testing.T) {
	db := newTestDB(t, &domain.Job{})
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedJob(t, db, domain.Job{
			ID: fmt.Sprintf("j%d", i), Title: "T", Company: "C", Description: "D",
			JobType: "full_time", EmployerID: "e1", CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	var out []domain.Job
	total, err := countAndPage(db, &Filter{}, &domain.Job{}, &out, 0, 2)
	if err != nil {
		t.Fatalf("countAndPage: %v", err)
	}
	if total != 5 || len(out) != 2 {
		t.Fatalf("total=%d len=%d", total, len(out))
	}
	// Newest first.
	if out[0].ID != "j4" || out[1].ID != "j3" {
		t.Fatalf("order: %s, %s", out[0].ID, out[1].ID)
	}

	// Second page continues without overlap.
	out = nil
	if _, err := countAndPage(db, &Filter{}, &domain.Job{}, &out, 2, 2); err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if out[0].ID != "j2" || out[1].ID != "j1" {
		t.Fatalf("page 2 order: %s, %s", out[0].ID, out[1].ID)
	}

	// No matches: short-circuits without running the page query.
	out = nil
	f := (&Filter{}).Eq("job_type", "nonexistent")
	total, err = countAndPage(db, f, &domain.Job{}, &out, 0, 2)
	if err != nil || total != 0 || len(out) != 0 {
		t.Fatalf("empty: total=%d len=%d err=%v", total, len(out), err)
	}
}

func TestCountAndPage_TimestampTieBrokenByID(t *testing.T) {
	db := newTestDB(t, &domain.Job{})
	same := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c"} {
		seedJob(t, db, domain.Job{ID: id, Title: "T", Company: "C", Description: "D", JobType: "full_time", EmployerID: "e1", CreatedAt: same})
	}

	var out []domain.Job
	if _, err := countAndPage(db, &Filter{}, &domain.Job{}, &out, 0, 3); err != nil {
		t.Fatalf("countAndPage: %v", err)
	}
	if out[0].ID != "c" || out[1].ID != "b" || out[2].ID != "a" {
		t.Fatalf("tie-break order: %s, %s, %s", out[0].ID, out[1].ID, out[2].ID)
	}
}
