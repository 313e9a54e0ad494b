// Handler container and auth plumbing shared by all route handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/talentlink/go-match-backend/internal/auth"
	"github.com/talentlink/go-match-backend/internal/services"
)

// Handlers bundles the application services behind the HTTP routes.
type Handlers struct {
	users   *services.UserService
	courses *services.CourseService
	jobs    *services.JobService
	docs    *services.DocumentService
	exps    *services.ExperienceService
}

// New constructs the handler set from its service dependencies.
func New(
	users *services.UserService,
	courses *services.CourseService,
	jobs *services.JobService,
	docs *services.DocumentService,
	exps *services.ExperienceService,
) *Handlers {
	return &Handlers{
		users:   users,
		courses: courses,
		jobs:    jobs,
		docs:    docs,
		exps:    exps,
	}
}

// requireClaims extracts and decodes the bearer token of a protected route.
// Failures carry UNAUTHORIZED / INVALID_TOKEN / TOKEN_EXPIRED and bubble to
// the Wrap conversion point.
func requireClaims(c *gin.Context) (*auth.Claims, error) {
	claims, err := auth.ParseHeader(c.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}
	// Expose the user to access logs and the rate limiter.
	c.Set("userID", claims.UserID)
	return claims, nil
}
