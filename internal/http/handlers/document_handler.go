// Document HTTP handlers.
//
// Endpoints (all require a bearer token; every operation is scoped to the
// token's user):
//   - GET    /documents     (filtered + paginated)
//   - POST   /documents     (register uploaded file metadata)
//   - DELETE /documents/:id
//
// The file body itself is uploaded to object storage out of band; this API
// only manages the metadata rows pointing at it.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/talentlink/go-match-backend/internal/apierr"
	"github.com/talentlink/go-match-backend/internal/domain"
	"github.com/talentlink/go-match-backend/internal/services"
)

// defaultDocumentLimit is the page size when the document list request does
// not specify one.
const defaultDocumentLimit = 20

// CreateDocumentRequest is the JSON payload for registering a document.
type CreateDocumentRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	FileURL  string `json:"file_url"`
}

// ListDocuments returns a page of the calling user's documents.
func (h *Handlers) ListDocuments(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	page, limit, err := parsePage(c, defaultDocumentLimit)
	if err != nil {
		return err
	}

	items, total, err := h.docs.List(c.Request.Context(), claims.UserID, services.DocumentListParams{
		Page:     page,
		Limit:    limit,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return err
	}

	ok(c, items, Meta(NewPageMeta(page, limit, total)))
	return nil
}

// CreateDocument registers document metadata for the calling user.
func (h *Handlers) CreateDocument(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apierr.New(apierr.CodeInvalidInput, "request body is not valid JSON")
	}

	doc, err := h.docs.Create(c.Request.Context(), claims.UserID, &domain.Document{
		Title:    req.Title,
		Category: req.Category,
		FileURL:  req.FileURL,
	})
	if err != nil {
		return err
	}

	created(c, doc, Message("document created"))
	return nil
}

// DeleteDocument removes a document owned by the calling user.
func (h *Handlers) DeleteDocument(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	if err := h.docs.Delete(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
		return err
	}
	ok(c, gin.H{"id": c.Param("id")}, Message("document deleted"))
	return nil
}
