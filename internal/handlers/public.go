package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/llum/portfolio-api/internal/dto"
	"github.com/llum/portfolio-api/internal/services"
)

// PublicHandler serves the unauthenticated read-only projections of the
// portfolio owner. It never mutates state.
type PublicHandler struct {
	publicService *services.PublicService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(publicService *services.PublicService) *PublicHandler {
	return &PublicHandler{
		publicService: publicService,
	}
}

// GetUser returns the owner's public profile. Login email and password
// hash are never part of the projection.
func (h *PublicHandler) GetUser(c *gin.Context) {
	owner, err := h.publicService.Owner()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicUserDTO(*owner))
}

// ListCategories returns the owner's categories for the public
// navigation.
func (h *PublicHandler) ListCategories(c *gin.Context) {
	categories, err := h.publicService.OwnerCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicCategoryDTOs(categories))
}
