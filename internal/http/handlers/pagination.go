// Query-parameter parsing shared by list endpoints.
//
// Parsing is strict: an absent parameter falls back to its default, but a
// present, malformed, or out-of-range one fails with INVALID_INPUT before
// any query executes. Clamping is deliberately not done: silently
// rewriting a bad page number hides client bugs.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/talentlink/go-match-backend/internal/apierr"
)

// maxPageLimit caps the page size of every list endpoint.
const maxPageLimit = 100

// parsePage extracts page/limit from the query string. page defaults to 1
// and must be >= 1; limit defaults per endpoint and must be in
// [1, maxPageLimit].
func parsePage(c *gin.Context, defaultLimit int) (page, limit int, err error) {
	page = 1
	if raw := c.Query("page"); raw != "" {
		n, perr := strconv.Atoi(raw)
		if perr != nil || n < 1 {
			return 0, 0, apierr.New(apierr.CodeInvalidInput, "page must be a positive integer").
				WithDetails(map[string]any{"page": raw})
		}
		page = n
	}

	limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, perr := strconv.Atoi(raw)
		if perr != nil || n < 1 || n > maxPageLimit {
			return 0, 0, apierr.Newf(apierr.CodeInvalidInput, "limit must be an integer between 1 and %d", maxPageLimit).
				WithDetails(map[string]any{"limit": raw})
		}
		limit = n
	}
	return page, limit, nil
}

// queryInt parses an optional integer query parameter. Absent → nil.
func queryInt(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apierr.Newf(apierr.CodeInvalidInput, "%s must be an integer", name).
			WithDetails(map[string]any{name: raw})
	}
	return &n, nil
}

// queryBool parses an optional boolean query parameter. Absent → nil.
func queryBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apierr.Newf(apierr.CodeInvalidInput, "%s must be a boolean", name).
			WithDetails(map[string]any{name: raw})
	}
	return &b, nil
}
