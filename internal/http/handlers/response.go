// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints: the success/error JSON envelopes, pagination metadata, and the
// Wrap helper that guarantees every request, whatever its handler does,
// resolves to a well-formed envelope with a sensible status code.
//
// Conventions:
//   - Success bodies are {"success":true,"data":...} with at most one of
//     "message" (human note) or "meta" (pagination) attached.
//   - Error bodies are {"success":false,"message":...,"code":...,"details":...}
//     with the status taken from the error taxonomy.
//   - writeError() centralizes error classification and logging; it is the
//     only place an error value becomes a response.
//
// Example error response:
//
//	HTTP/1.1 403 Forbidden
//	{
//	  "success": false,
//	  "message": "user type not allowed for this operation",
//	  "code": "INSUFFICIENT_PERMISSIONS",
//	  "details": { "userType": "job_seeker", "allowed": ["admin"] }
//	}
package handlers

import (
	"fmt"
	"math"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/talentlink/go-match-backend/internal/apierr"
	"github.com/talentlink/go-match-backend/internal/http/middleware"
)

// SuccessResponse is the envelope of every successful response.
// Message and Meta are mutually exclusive (see Extra).
type SuccessResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Message string    `json:"message,omitempty"`
	Meta    *PageMeta `json:"meta,omitempty"`
}

// ErrorResponse is the envelope of every failed response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// PageMeta is the pagination metadata attached to list responses.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPageMeta computes pagination metadata for a page of a total result set.
func NewPageMeta(page, limit int, total int64) PageMeta {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return PageMeta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// Extra is the optional companion of a success envelope: either a
// human-readable message, or pagination metadata, or nothing. Exactly one
// variant is ever serialized; the zero value means "neither".
type Extra struct {
	kind    extraKind
	message string
	meta    PageMeta
}

type extraKind int

const (
	extraNone extraKind = iota
	extraMessage
	extraMeta
)

// Message returns an Extra carrying a human-readable note.
func Message(msg string) Extra { return Extra{kind: extraMessage, message: msg} }

// Meta returns an Extra carrying pagination metadata.
func Meta(m PageMeta) Extra { return Extra{kind: extraMeta, meta: m} }

// respond writes a success envelope with the given status.
func respond(c *gin.Context, status int, data any, x Extra) {
	resp := SuccessResponse{Success: true, Data: data}
	switch x.kind {
	case extraMessage:
		resp.Message = x.message
	case extraMeta:
		m := x.meta
		resp.Meta = &m
	}
	c.JSON(status, resp)
}

// ok writes a 200 success envelope.
func ok(c *gin.Context, data any, x Extra) { respond(c, http.StatusOK, data, x) }

// created writes a 201 success envelope.
func created(c *gin.Context, data any, x Extra) { respond(c, http.StatusCreated, data, x) }

// writeError converts any failure value into an error envelope and logs it
// once, tagged with the context label. Three shapes are handled:
//
//   - *apierr.Error: code/message/details/status emitted verbatim
//   - error: INTERNAL_ERROR with the error message (stack attached as
//     details only in development)
//   - anything else (panic values): INTERNAL_ERROR with the stringified
//     value as details
func writeError(c *gin.Context, v any, context string) {
	lg := middleware.LoggerFrom(c)

	var resp ErrorResponse
	var status int

	switch e := v.(type) {
	case *apierr.Error:
		status = e.HTTPStatus()
		resp = ErrorResponse{
			Message: e.Message,
			Code:    string(e.Code),
			Details: e.Details,
		}
		ev := lg.Warn()
		if status >= http.StatusInternalServerError {
			ev = lg.Error()
		}
		ev.Str("context", context).
			Str("code", string(e.Code)).
			Int("status", status).
			Err(e).
			Msg("api error")
	case error:
		status = http.StatusInternalServerError
		resp = ErrorResponse{
			Message: e.Error(),
			Code:    string(apierr.CodeInternalError),
		}
		if apierr.Verbose() {
			resp.Details = string(debug.Stack())
		}
		lg.Error().
			Str("context", context).
			Err(e).
			Msg("unhandled error")
	default:
		status = http.StatusInternalServerError
		resp = ErrorResponse{
			Message: "internal server error",
			Code:    string(apierr.CodeInternalError),
			Details: fmt.Sprint(e),
		}
		lg.Error().
			Str("context", context).
			Interface("value", e).
			Msg("unhandled non-error panic")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported error-envelope writer for callers outside this
// package (router fallbacks, middleware wiring).
func Fail(c *gin.Context, err *apierr.Error, context string) { writeError(c, err, context) }

// HandlerFunc is a route handler that reports failures by returning an
// error instead of writing its own error response.
type HandlerFunc func(*gin.Context) error

// Wrap adapts a HandlerFunc to gin, guaranteeing a Response is always
// produced: a returned error, or a panic of any shape, is funneled
// through writeError. No failure escapes a wrapped handler unconverted.
// The context label tags the log line for every failure of this route.
func Wrap(fn HandlerFunc, context string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				if !c.Writer.Written() {
					writeError(c, rec, context)
					return
				}
				c.Abort()
			}
		}()
		if err := fn(c); err != nil {
			writeError(c, err, context)
		}
	}
}
