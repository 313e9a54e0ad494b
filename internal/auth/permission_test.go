package auth

import (
	"errors"
	"testing"

	"github.com/talentlink/go-match-backend/internal/apierr"
)

func TestCheckPermission_Allowed(t *testing.T) {
	if err := CheckPermission(RoleAdmin, RoleInstructor, RoleAdmin); err != nil {
		t.Fatalf("admin should be allowed: %v", err)
	}
	if err := CheckPermission(RoleInstructor, RoleInstructor); err != nil {
		t.Fatalf("exact match should be allowed: %v", err)
	}
}

func TestCheckPermission_Denied(t *testing.T) {
	err := CheckPermission(RoleJobSeeker, RoleEmployer, RoleAdmin)
	if !apierr.Is(err, apierr.CodeInsufficientPermissions) {
		t.Fatalf("expected INSUFFICIENT_PERMISSIONS, got %v", err)
	}

	var e *apierr.Error
	if !errors.As(err, &e) {
		t.Fatal("expected *apierr.Error")
	}
	d, ok := e.Details.(map[string]any)
	if !ok {
		t.Fatalf("details=%v", e.Details)
	}
	if d["userType"] != RoleJobSeeker {
		t.Fatalf("details userType=%v", d["userType"])
	}
	allowed, ok := d["allowed"].([]string)
	if !ok || len(allowed) != 2 || allowed[0] != RoleEmployer {
		t.Fatalf("details allowed=%v", d["allowed"])
	}
}

func TestCheckPermission_EmptyAllowListDeniesEveryone(t *testing.T) {
	if err := CheckPermission(RoleAdmin); err == nil {
		t.Fatal("empty allow list should deny")
	}
}
