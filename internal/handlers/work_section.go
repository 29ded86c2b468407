package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/llum/portfolio-api/internal/dto"
	apierrors "github.com/llum/portfolio-api/internal/errors"
	"github.com/llum/portfolio-api/internal/middleware"
	"github.com/llum/portfolio-api/internal/services"
)

// WorkSectionHandler serves section CRUD and the public nested listing.
type WorkSectionHandler struct {
	sectionService *services.WorkSectionService
}

// NewWorkSectionHandler creates a new WorkSectionHandler.
func NewWorkSectionHandler(sectionService *services.WorkSectionService) *WorkSectionHandler {
	return &WorkSectionHandler{
		sectionService: sectionService,
	}
}

// ListByWork returns a work's sections with nested ordered images.
// Public.
func (h *WorkSectionHandler) ListByWork(c *gin.Context) {
	workID, ok := parseIDParam(c, "workId")
	if !ok {
		return
	}

	sections, err := h.sectionService.ListByWork(workID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sections)
}

// Create adds a section to one of the authenticated user's works.
func (h *WorkSectionHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	workID, ok := parseIDParam(c, "workId")
	if !ok {
		return
	}

	type CreateSectionRequest struct {
		Type  string  `json:"type"`
		Text  *string `json:"text"`
		Order *int    `json:"order"`
	}

	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	section, err := h.sectionService.Create(services.CreateSectionInput{
		ActorID: userID,
		WorkID:  workID,
		Type:    req.Type,
		Text:    req.Text,
		Order:   req.Order,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, section)
}

// Update applies a partial update to a section.
func (h *WorkSectionHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "sectionId")
	if !ok {
		return
	}

	type UpdateSectionRequest struct {
		Type  *string              `json:"type"`
		Text  dto.Optional[string] `json:"text"`
		Order *int                 `json:"order"`
	}

	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	section, err := h.sectionService.Update(id, userID, services.UpdateSectionInput{
		Type:  req.Type,
		Text:  req.Text,
		Order: req.Order,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// Delete removes a section and its images.
func (h *WorkSectionHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "sectionId")
	if !ok {
		return
	}

	if err := h.sectionService.Delete(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
