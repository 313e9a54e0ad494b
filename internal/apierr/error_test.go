package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestNew_DefaultsStatusFromTable(t *testing.T) {
	e := New(CodeNotFound, "nope")
	if e.HTTPStatus() != http.StatusNotFound {
		t.Fatalf("status=%d", e.HTTPStatus())
	}
	if e.Code != CodeNotFound || e.Message != "nope" || e.Details != nil {
		t.Fatalf("unexpected fields: %+v", e)
	}
}

func TestNewf_FormatsMessage(t *testing.T) {
	e := Newf(CodeInvalidInput, "limit must be <= %d", 100)
	if e.Message != "limit must be <= 100" {
		t.Fatalf("message=%q", e.Message)
	}
}

func TestWithStatus_OverridesAndIgnoresZero(t *testing.T) {
	e := New(CodeConflict, "busy").WithStatus(http.StatusLocked)
	if e.HTTPStatus() != http.StatusLocked {
		t.Fatalf("override not applied: %d", e.HTTPStatus())
	}
	e2 := New(CodeConflict, "busy").WithStatus(0)
	if e2.HTTPStatus() != http.StatusConflict {
		t.Fatalf("zero override changed status: %d", e2.HTTPStatus())
	}
}

func TestWithDetails_Chainable(t *testing.T) {
	e := New(CodeValidationError, "bad").WithDetails(map[string]any{"field": "email"})
	d, ok := e.Details.(map[string]any)
	if !ok || d["field"] != "email" {
		t.Fatalf("details=%v", e.Details)
	}
}

func TestWrap_CauseAvailableViaUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	e := Wrap(CodeDBError, "query failed", cause)
	if !errors.Is(e, cause) {
		t.Fatal("errors.Is should see the cause")
	}
	if !strings.Contains(e.Error(), "disk on fire") {
		t.Fatalf("Error() should mention the cause: %s", e.Error())
	}
}

func TestIs_MatchesCodeThroughWrapping(t *testing.T) {
	e := New(CodeTokenExpired, "old")
	wrapped := fmt.Errorf("outer: %w", e)
	if !Is(wrapped, CodeTokenExpired) {
		t.Fatal("Is should match through fmt wrapping")
	}
	if Is(wrapped, CodeNotFound) {
		t.Fatal("Is matched the wrong code")
	}
	if Is(errors.New("plain"), CodeNotFound) {
		t.Fatal("Is matched a non-taxonomy error")
	}
}

func TestDatabase_HidesDriverDetailByDefault(t *testing.T) {
	SetVerbose(false)
	e := Database(errors.New("near \"SELCT\": syntax error"))
	if e.Code != CodeDBError {
		t.Fatalf("code=%s", e.Code)
	}
	if e.Message != "資料庫操作失敗" {
		t.Fatalf("message=%q", e.Message)
	}
	if e.Details != nil {
		t.Fatalf("driver detail leaked: %v", e.Details)
	}
	if e.HTTPStatus() != http.StatusInternalServerError {
		t.Fatalf("status=%d", e.HTTPStatus())
	}
}

func TestDatabase_ExposesDetailWhenVerbose(t *testing.T) {
	SetVerbose(true)
	defer SetVerbose(false)

	e := Database(errors.New("constraint failed"))
	if e.Details != "constraint failed" {
		t.Fatalf("details=%v", e.Details)
	}
}
