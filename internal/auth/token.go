// Package auth extracts and validates bearer-token claims for protected
// endpoints and enforces role-based access.
//
// Token handling is deliberately split in two steps, mirroring how requests
// flow through handlers:
//
//  1. TokenFromHeader pulls the raw token out of the Authorization header
//     (scheme check only, no inspection of the token itself).
//  2. ParseToken decodes the payload segment and normalizes the claims.
//
// ParseToken performs NO cryptographic signature verification: it decodes
// and inspects the payload claims at face value. Tokens are issued by this
// service (see Sign), but any gateway-level verification is outside this
// layer. Expiry is still enforced from the `exp` claim.
package auth

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentlink/go-match-backend/internal/apierr"
)

// bearerPrefix is the only accepted Authorization scheme.
const bearerPrefix = "Bearer "

// User roles recognized by the platform.
const (
	RoleJobSeeker  = "job_seeker"
	RoleEmployer   = "employer"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Claims is the decoded, normalized payload of a bearer token.
//
// UserID is always populated: historical tokens carry the user identifier
// under `userId`, `user_id`, or `id`, and ParseToken folds whichever is
// present into this single field. ExpiresAt is unix seconds (0 when the
// token carries no expiry).
type Claims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt int64
}

// TokenFromHeader extracts the raw bearer token from an Authorization header
// value. The header must be present and start with the literal "Bearer "
// prefix; anything else fails with UNAUTHORIZED. The returned token is the
// substring after the prefix, unvalidated.
func TokenFromHeader(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", apierr.New(apierr.CodeUnauthorized, "missing or malformed Authorization header")
	}
	return header[len(bearerPrefix):], nil
}

// ParseToken decodes a JWT payload into normalized Claims.
//
// Failure modes:
//   - not exactly three dot-separated segments  → INVALID_TOKEN
//   - payload segment not base64 / not JSON     → INVALID_TOKEN
//   - numeric `exp` claim in the past           → TOKEN_EXPIRED
//   - none of userId / user_id / id present     → INVALID_TOKEN
//
// The signature segment is never checked (see package doc).
func ParseToken(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, apierr.New(apierr.CodeInvalidToken, "token is not a valid JWT")
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return nil, apierr.New(apierr.CodeInvalidToken, "token payload is not valid base64")
	}

	var mc jwt.MapClaims
	if err := json.Unmarshal(payload, &mc); err != nil {
		return nil, apierr.New(apierr.CodeInvalidToken, "token payload is not valid JSON")
	}

	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			return nil, apierr.New(apierr.CodeTokenExpired, "token has expired")
		}
	}

	c := &Claims{}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Unix()
	}

	c.UserID = firstClaimString(mc, "userId", "user_id", "id")
	if c.UserID == "" {
		return nil, apierr.New(apierr.CodeInvalidToken, "token carries no user identifier")
	}

	c.Email, _ = mc["email"].(string)
	c.Role = firstClaimString(mc, "userType", "role")

	return c, nil
}

// ParseHeader is TokenFromHeader followed by ParseToken, the common path for
// protected handlers.
func ParseHeader(header string) (*Claims, error) {
	token, err := TokenFromHeader(header)
	if err != nil {
		return nil, err
	}
	return ParseToken(token)
}

// firstClaimString returns the first of the named claims present, rendered
// as a string. Numeric identifiers (JSON numbers decode as float64) are
// formatted without an exponent so "1" stays "1".
func firstClaimString(mc jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		v, ok := mc[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case json.Number:
			return t.String()
		}
	}
	return ""
}
