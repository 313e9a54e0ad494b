// Experience HTTP handlers: a job seeker's work-history CRUD, all scoped to
// the bearer token's user.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talentlink/go-match-backend/internal/apierr"
	"github.com/talentlink/go-match-backend/internal/domain"
)

// defaultExperienceLimit is the page size when the experience list request
// does not specify one.
const defaultExperienceLimit = 20

// ExperienceRequest is the JSON payload for creating or updating a work
// history entry. Dates use RFC 3339.
type ExperienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// ListExperiences returns a page of the calling user's work history.
func (h *Handlers) ListExperiences(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	page, limit, err := parsePage(c, defaultExperienceLimit)
	if err != nil {
		return err
	}

	items, total, err := h.exps.List(c.Request.Context(), claims.UserID, page, limit)
	if err != nil {
		return err
	}

	ok(c, items, Meta(NewPageMeta(page, limit, total)))
	return nil
}

// CreateExperience adds a work-history entry for the calling user.
func (h *Handlers) CreateExperience(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apierr.New(apierr.CodeInvalidInput, "request body is not valid JSON")
	}

	e := &domain.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		EndDate:     req.EndDate,
	}
	if req.StartDate != nil {
		e.StartDate = *req.StartDate
	}

	exp, err := h.exps.Create(c.Request.Context(), claims.UserID, e)
	if err != nil {
		return err
	}

	created(c, exp, Message("experience created"))
	return nil
}

// UpdateExperience edits a work-history entry owned by the calling user.
func (h *Handlers) UpdateExperience(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apierr.New(apierr.CodeInvalidInput, "request body is not valid JSON")
	}

	updates := map[string]any{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Company != "" {
		updates["company"] = req.Company
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}

	if err := h.exps.Update(c.Request.Context(), c.Param("id"), claims.UserID, updates); err != nil {
		return err
	}

	ok(c, gin.H{"id": c.Param("id")}, Message("experience updated"))
	return nil
}

// DeleteExperience removes a work-history entry owned by the calling user.
func (h *Handlers) DeleteExperience(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	if err := h.exps.Delete(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	ok(c, gin.H{"id": c.Param("id")}, Message("experience deleted"))
	return nil
}
