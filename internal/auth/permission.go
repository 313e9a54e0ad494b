package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentlink/go-match-backend/internal/apierr"
)

// CheckPermission validates a user's role against an allow-list.
//
// It returns INSUFFICIENT_PERMISSIONS when role is not a member of allowed;
// the details carry the offending role and the allowed set so clients can
// explain the denial. A nil return means access is granted; there are no
// other side effects.
func CheckPermission(role string, allowed ...string) error {
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return apierr.New(apierr.CodeInsufficientPermissions, "user type not allowed for this operation").
		WithDetails(map[string]any{
			"userType": role,
			"allowed":  allowed,
		})
}

// Sign issues an HS256-signed token for the given user. Tokens embed the
// same claim keys ParseToken normalizes from, so freshly issued tokens round
// trip through the extractor.
func Sign(userID, email, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   userID,
		"email":    email,
		"userType": role,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	})
	return tok.SignedString(secret)
}
