package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/llum/portfolio-api/internal/dto"
	apierrors "github.com/llum/portfolio-api/internal/errors"
	"github.com/llum/portfolio-api/internal/middleware"
	"github.com/llum/portfolio-api/internal/models"
	"github.com/llum/portfolio-api/internal/services"
)

// CategoryHandler serves category CRUD plus the public listings.
type CategoryHandler struct {
	categoryService *services.CategoryService
	publicService   *services.PublicService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService, publicService *services.PublicService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		publicService:   publicService,
	}
}

// List returns the portfolio owner's categories, ordered. Public.
func (h *CategoryHandler) List(c *gin.Context) {
	owner, err := h.publicService.Owner()
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			// No owner provisioned yet: the table is simply empty.
			c.JSON(http.StatusOK, []models.Category{})
			return
		}
		respondServiceError(c, err)
		return
	}

	categories, err := h.categoryService.ListForUser(owner.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ListByUser returns a user's categories, ordered. Public.
func (h *CategoryHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	categories, err := h.categoryService.ListForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// Create creates a category owned by the authenticated user. The slug
// is derived from the name.
func (h *CategoryHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateCategoryRequest struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Order       *int    `json:"order"`
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.Create(services.CreateCategoryInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// Update applies a partial update; renaming regenerates the slug.
func (h *CategoryHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	type UpdateCategoryRequest struct {
		Name        *string              `json:"name"`
		Description dto.Optional[string] `json:"description"`
		Order       *int                 `json:"order"`
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.Update(id, userID, services.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete removes a category and everything under it.
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
