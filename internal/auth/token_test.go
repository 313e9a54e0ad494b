package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/talentlink/go-match-backend/internal/apierr"
)

// fakeToken builds a structurally valid JWT from a payload map. Header and
// signature segments are filler; the extractor never reads them.
func fakeToken(t *testing.T, payload map[string]any) string {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	seg := base64.RawURLEncoding.EncodeToString
	return seg([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." + seg(b) + ".sig"
}

func TestTokenFromHeader(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc123", "abc123", false},
		{"missing", "", "", true},
		{"wrong scheme", "Token xyz", "", true},
		{"lowercase scheme", "bearer abc", "", true},
		{"no space", "Bearerabc", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TokenFromHeader(tc.header)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !apierr.Is(err, apierr.CodeUnauthorized) {
					t.Fatalf("code mismatch: %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("got=%q err=%v", got, err)
			}
		})
	}
}

func TestParseToken_TwoSegmentsRejected(t *testing.T) {
	_, err := ParseToken("only.two")
	if !apierr.Is(err, apierr.CodeInvalidToken) {
		t.Fatalf("expected INVALID_TOKEN, got %v", err)
	}
}

func TestParseToken_GarbagePayloadRejected(t *testing.T) {
	if _, err := ParseToken("h.!!!not-base64!!!.s"); !apierr.Is(err, apierr.CodeInvalidToken) {
		t.Fatalf("bad base64: %v", err)
	}
	seg := base64.RawURLEncoding.EncodeToString
	tok := "h." + seg([]byte("not json")) + ".s"
	if _, err := ParseToken(tok); !apierr.Is(err, apierr.CodeInvalidToken) {
		t.Fatalf("bad json: %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	tok := fakeToken(t, map[string]any{
		"userId": "u1",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	_, err := ParseToken(tok)
	if !apierr.Is(err, apierr.CodeTokenExpired) {
		t.Fatalf("expected TOKEN_EXPIRED, got %v", err)
	}
}

func TestParseToken_NoExpiryIsAccepted(t *testing.T) {
	c, err := ParseToken(fakeToken(t, map[string]any{"userId": "u1"}))
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if c.ExpiresAt != 0 {
		t.Fatalf("ExpiresAt=%d, want 0", c.ExpiresAt)
	}
}

func TestParseToken_UserIDNormalization(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
		want    string
	}{
		{"userId", map[string]any{"userId": "a"}, "a"},
		{"user_id fallback", map[string]any{"user_id": "b"}, "b"},
		{"id fallback", map[string]any{"id": "c"}, "c"},
		{"numeric id", map[string]any{"id": 42}, "42"},
		{"userId wins", map[string]any{"userId": "a", "user_id": "b", "id": "c"}, "a"},
		{"empty userId falls through", map[string]any{"userId": "", "user_id": "b"}, "b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseToken(fakeToken(t, tc.payload))
			if err != nil {
				t.Fatalf("ParseToken: %v", err)
			}
			if c.UserID != tc.want {
				t.Fatalf("UserID=%q want %q", c.UserID, tc.want)
			}
		})
	}
}

func TestParseToken_NoUserIdentifier(t *testing.T) {
	_, err := ParseToken(fakeToken(t, map[string]any{"email": "x@example.com"}))
	if !apierr.Is(err, apierr.CodeInvalidToken) {
		t.Fatalf("expected INVALID_TOKEN, got %v", err)
	}
}

func TestParseToken_EmailAndRole(t *testing.T) {
	c, err := ParseToken(fakeToken(t, map[string]any{
		"userId":   "u1",
		"email":    "u1@example.com",
		"userType": RoleEmployer,
	}))
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if c.Email != "u1@example.com" || c.Role != RoleEmployer {
		t.Fatalf("claims=%+v", c)
	}

	// "role" is honored when "userType" is absent.
	c, err = ParseToken(fakeToken(t, map[string]any{"userId": "u1", "role": RoleAdmin}))
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if c.Role != RoleAdmin {
		t.Fatalf("Role=%q", c.Role)
	}
}

func TestParseHeader_HappyPath(t *testing.T) {
	tok := fakeToken(t, map[string]any{"userId": "u9", "userType": RoleJobSeeker})
	c, err := ParseHeader("Bearer " + tok)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if c.UserID != "u9" || c.Role != RoleJobSeeker {
		t.Fatalf("claims=%+v", c)
	}
}

func TestSign_RoundTripsThroughParseToken(t *testing.T) {
	tok, err := Sign("u1", "u1@example.com", RoleInstructor, []byte("secret"), time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	c, err := ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if c.UserID != "u1" || c.Email != "u1@example.com" || c.Role != RoleInstructor {
		t.Fatalf("claims=%+v", c)
	}
	if c.ExpiresAt <= time.Now().Unix() {
		t.Fatalf("ExpiresAt in the past: %d", c.ExpiresAt)
	}
}
