// Course HTTP handlers.
//
// This file exposes REST endpoints for course listings:
//   - GET    /courses       (public, filtered + paginated)
//   - GET    /courses/:id   (public)
//   - POST   /courses       (instructor/admin)
//   - PUT    /courses/:id   (owning instructor/admin)
//   - DELETE /courses/:id   (owning instructor/admin)
//
// Handlers are transport-thin: they parse and validate request inputs,
// check claims and roles, delegate to CourseService, and shape the
// response envelope. All failures are returned as errors and converted by
// Wrap.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/talentlink/go-match-backend/internal/apierr"
	"github.com/talentlink/go-match-backend/internal/auth"
	"github.com/talentlink/go-match-backend/internal/domain"
	"github.com/talentlink/go-match-backend/internal/services"
)

// defaultCourseLimit is the page size when the course list request does not
// specify one.
const defaultCourseLimit = 12

// CreateCourseRequest is the JSON payload for publishing a course.
type CreateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CourseType  string  `json:"course_type"`
	Price       float64 `json:"price"`
}

// UpdateCourseRequest is the JSON payload for editing a course. Only the
// fields present are applied.
type UpdateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CourseType  *string  `json:"course_type"`
	Price       *float64 `json:"price"`
}

// ListCourses returns a filtered, paginated page of courses.
func (h *Handlers) ListCourses(c *gin.Context) error {
	page, limit, err := parsePage(c, defaultCourseLimit)
	if err != nil {
		return err
	}

	items, total, err := h.courses.List(c.Request.Context(), services.CourseListParams{
		Page:       page,
		Limit:      limit,
		CourseType: c.Query("course_type"),
		Search:     c.Query("search"),
	})
	if err != nil {
		return err
	}

	ok(c, items, Meta(NewPageMeta(page, limit, total)))
	return nil
}

// GetCourse returns a single course by ID.
func (h *Handlers) GetCourse(c *gin.Context) error {
	course, err := h.courses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	ok(c, course, Extra{})
	return nil
}

// CreateCourse publishes a new course owned by the calling instructor.
func (h *Handlers) CreateCourse(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	if err := auth.CheckPermission(claims.Role, auth.RoleInstructor, auth.RoleAdmin); err != nil {
		return err
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apierr.New(apierr.CodeInvalidInput, "request body is not valid JSON")
	}

	course, err := h.courses.Create(c.Request.Context(), claims.UserID, &domain.Course{
		Title:       req.Title,
		Description: req.Description,
		CourseType:  req.CourseType,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	created(c, course, Message("course created"))
	return nil
}

// UpdateCourse edits a course owned by the calling instructor.
func (h *Handlers) UpdateCourse(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	if err := auth.CheckPermission(claims.Role, auth.RoleInstructor, auth.RoleAdmin); err != nil {
		return err
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apierr.New(apierr.CodeInvalidInput, "request body is not valid JSON")
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CourseType != nil {
		updates["course_type"] = *req.CourseType
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	if err := h.courses.Update(c.Request.Context(), c.Param("id"), claims.UserID, updates); err != nil {
		return err
	}

	ok(c, gin.H{"id": c.Param("id")}, Message("course updated"))
	return nil
}

// DeleteCourse removes a course owned by the calling instructor.
func (h *Handlers) DeleteCourse(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	if err := auth.CheckPermission(claims.Role, auth.RoleInstructor, auth.RoleAdmin); err != nil {
		return err
	}
	if err := h.courses.Delete(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	ok(c, gin.H{"id": c.Param("id")}, Message("course deleted"))
	return nil
}
