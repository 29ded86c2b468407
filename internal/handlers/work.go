package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/llum/portfolio-api/internal/dto"
	apierrors "github.com/llum/portfolio-api/internal/errors"
	"github.com/llum/portfolio-api/internal/middleware"
	"github.com/llum/portfolio-api/internal/services"
)

// WorkHandler serves work CRUD plus the public per-category listing.
type WorkHandler struct {
	workService *services.WorkService
}

// NewWorkHandler creates a new WorkHandler.
func NewWorkHandler(workService *services.WorkService) *WorkHandler {
	return &WorkHandler{
		workService: workService,
	}
}

// ListByCategory returns a category's works, ordered. Public.
func (h *WorkHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	works, err := h.workService.ListByCategory(categoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, works)
}

// ListMine returns every work of the authenticated user with its
// category, for the admin table.
func (h *WorkHandler) ListMine(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	works, err := h.workService.ListForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, works)
}

// Create creates a work under one of the authenticated user's
// categories.
func (h *WorkHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateWorkRequest struct {
		Title        string  `json:"title"`
		Description  *string `json:"description"`
		Introduction *string `json:"introduction"`
		DateLabel    *string `json:"date_label"`
		Banner       *string `json:"banner"`
		CategoryID   uint64  `json:"category_id"`
		Order        *int    `json:"order"`
	}

	var req CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	work, err := h.workService.Create(services.CreateWorkInput{
		ActorID:      userID,
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		Description:  req.Description,
		Introduction: req.Introduction,
		DateLabel:    req.DateLabel,
		Banner:       req.Banner,
		Order:        req.Order,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, work)
}

// Update applies a partial update to a work.
func (h *WorkHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "workId")
	if !ok {
		return
	}

	type UpdateWorkRequest struct {
		Title        *string              `json:"title"`
		Description  dto.Optional[string] `json:"description"`
		Introduction dto.Optional[string] `json:"introduction"`
		DateLabel    dto.Optional[string] `json:"date_label"`
		Banner       dto.Optional[string] `json:"banner"`
		CategoryID   *uint64              `json:"category_id"`
		Order        *int                 `json:"order"`
	}

	var req UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	work, err := h.workService.Update(id, userID, services.UpdateWorkInput{
		Title:        req.Title,
		Description:  req.Description,
		Introduction: req.Introduction,
		DateLabel:    req.DateLabel,
		Banner:       req.Banner,
		CategoryID:   req.CategoryID,
		Order:        req.Order,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// Delete removes a work and everything under it.
func (h *WorkHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "workId")
	if !ok {
		return
	}

	if err := h.workService.Delete(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
