// Package services – UserService
//
// Registration and login. Passwords are hashed with bcrypt; login issues an
// HS256-signed bearer token carrying the claim keys the extractor
// normalizes from. Credential failures are deliberately indistinguishable
// (same UNAUTHORIZED for unknown email and wrong password).
package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/talentlink/go-match-backend/internal/apierr"
	"github.com/talentlink/go-match-backend/internal/auth"
	"github.com/talentlink/go-match-backend/internal/domain"
	"github.com/talentlink/go-match-backend/internal/repo"
)

// validUserTypes is the closed set accepted at registration.
var validUserTypes = map[string]bool{
	auth.RoleJobSeeker:  true,
	auth.RoleEmployer:   true,
	auth.RoleInstructor: true,
	auth.RoleAdmin:      true,
}

// minPasswordLen is the minimum accepted password length at registration.
const minPasswordLen = 8

// UserService provides registration, login, and profile lookup.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// JWTSecret signs tokens issued at login.
	JWTSecret []byte
	// TokenTTL is the issued token lifetime.
	TokenTTL time.Duration
}

// Register creates a new account. Emails are unique; the stored password is
// a bcrypt hash.
func (s *UserService) Register(ctx context.Context, email, password, name, userType string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apierr.New(apierr.CodeValidationError, "email is not valid")
	}
	if len(password) < minPasswordLen {
		return nil, apierr.Newf(apierr.CodeValidationError, "password must be at least %d characters", minPasswordLen)
	}
	if name == "" {
		return nil, apierr.New(apierr.CodeMissingRequiredField, "name is required")
	}
	if !validUserTypes[userType] {
		return nil, apierr.New(apierr.CodeValidationError, "unknown user type").
			WithDetails(map[string]any{"userType": userType})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierr.Wrap(apierr.CodeInternalError, "failed to hash password", err)
	}

	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		UserType:     userType,
	}
	if err := repo.CreateUser(ctx, s.DB, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apierr.New(apierr.CodeAlreadyExists, "an account with this email already exists")
		}
		return nil, apierr.Database(err)
	}
	return u, nil
}

// Login verifies credentials and returns the user plus a signed token.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apierr.New(apierr.CodeMissingRequiredField, "email and password are required")
	}

	u, err := repo.GetUserByEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", apierr.New(apierr.CodeUnauthorized, "invalid email or password")
		}
		return nil, "", apierr.Database(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", apierr.New(apierr.CodeUnauthorized, "invalid email or password")
	}

	token, err := auth.Sign(u.ID, u.Email, u.UserType, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return nil, "", apierr.Wrap(apierr.CodeInternalError, "failed to issue token", err)
	}
	return u, token, nil
}

// Get returns a user by ID, or NOT_FOUND.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apierr.New(apierr.CodeNotFound, "user not found")
		}
		return nil, apierr.Database(err)
	}
	return u, nil
}
