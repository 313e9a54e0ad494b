// Package apierr defines the error taxonomy shared by every API endpoint.
//
// This file enumerates the closed set of machine-readable error codes and
// their default HTTP status mapping. These codes give clients a stable
// vocabulary for programmatic error handling, independent of the
// human-readable message attached to any particular failure.
//
// Conventions:
//   - Codes are UPPER_SNAKE_CASE and domain-agnostic.
//   - Every code has exactly one default status in statusByCode; callers that
//     need a different status for an edge case override it at construction
//     time via WithStatus.
//   - statusByCode is initialized once at load time and never mutated, so it
//     is safe to read from concurrent request handlers without locking.
package apierr

import "net/http"

// Code is a stable, machine-readable error identifier.
type Code string

const (
	// Authentication / authorization
	CodeUnauthorized            Code = "UNAUTHORIZED"
	CodeInvalidToken            Code = "INVALID_TOKEN"
	CodeTokenExpired            Code = "TOKEN_EXPIRED"
	CodeForbidden               Code = "FORBIDDEN"
	CodeInsufficientPermissions Code = "INSUFFICIENT_PERMISSIONS"

	// Validation
	CodeValidationError      Code = "VALIDATION_ERROR"
	CodeInvalidInput         Code = "INVALID_INPUT"
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"

	// Resources
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	CodeConflict      Code = "CONFLICT"

	// Database
	CodeDBError           Code = "DB_ERROR"
	CodeDBConnectionError Code = "DB_CONNECTION_ERROR"
	CodeDBQueryError      Code = "DB_QUERY_ERROR"

	// System
	CodeInternalError        Code = "INTERNAL_ERROR"
	CodeServerError          Code = "SERVER_ERROR"
	CodeMethodNotAllowed     Code = "METHOD_NOT_ALLOWED"
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	CodeRateLimitExceeded    Code = "RATE_LIMIT_EXCEEDED"
)

// statusByCode maps every error code to its default HTTP status.
// Read-only after package initialization.
var statusByCode = map[Code]int{
	CodeUnauthorized:            http.StatusUnauthorized,
	CodeInvalidToken:            http.StatusUnauthorized,
	CodeTokenExpired:            http.StatusUnauthorized,
	CodeForbidden:               http.StatusForbidden,
	CodeInsufficientPermissions: http.StatusForbidden,
	CodeValidationError:         http.StatusBadRequest,
	CodeInvalidInput:            http.StatusBadRequest,
	CodeMissingRequiredField:    http.StatusBadRequest,
	CodeNotFound:                http.StatusNotFound,
	CodeAlreadyExists:           http.StatusConflict,
	CodeConflict:                http.StatusConflict,
	CodeDBError:                 http.StatusInternalServerError,
	CodeDBConnectionError:       http.StatusInternalServerError,
	CodeDBQueryError:            http.StatusInternalServerError,
	CodeInternalError:           http.StatusInternalServerError,
	CodeServerError:             http.StatusInternalServerError,
	CodeMethodNotAllowed:        http.StatusMethodNotAllowed,
	CodeExternalServiceError:    http.StatusBadGateway,
	CodeRateLimitExceeded:       http.StatusTooManyRequests,
}

// HTTPStatus returns the default HTTP status for the code.
// Unknown codes map to 500 so a bad constant can never downgrade a failure.
func (c Code) HTTPStatus() int {
	if s, ok := statusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}
