package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/llum/portfolio-api/internal/errors"
	"github.com/llum/portfolio-api/internal/middleware"
	"github.com/llum/portfolio-api/internal/services"
)

// WorkSectionImageHandler serves image CRUD. Images are read through
// their section's nested listing.
type WorkSectionImageHandler struct {
	imageService *services.WorkSectionImageService
}

// NewWorkSectionImageHandler creates a new WorkSectionImageHandler.
func NewWorkSectionImageHandler(imageService *services.WorkSectionImageService) *WorkSectionImageHandler {
	return &WorkSectionImageHandler{
		imageService: imageService,
	}
}

// Create adds an image reference to one of the authenticated user's
// sections.
func (h *WorkSectionImageHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	sectionID, ok := parseIDParam(c, "sectionId")
	if !ok {
		return
	}

	type CreateImageRequest struct {
		ImageURL string `json:"image_url"`
		Order    *int   `json:"order"`
	}

	var req CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	image, err := h.imageService.Create(services.CreateImageInput{
		ActorID:   userID,
		SectionID: sectionID,
		ImageURL:  req.ImageURL,
		Order:     req.Order,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, image)
}

// Update applies a partial update to an image.
func (h *WorkSectionImageHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "imageId")
	if !ok {
		return
	}

	type UpdateImageRequest struct {
		ImageURL *string `json:"image_url"`
		Order    *int    `json:"order"`
	}

	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	image, err := h.imageService.Update(id, userID, services.UpdateImageInput{
		ImageURL: req.ImageURL,
		Order:    req.Order,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, image)
}

// Delete removes an image reference.
func (h *WorkSectionImageHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "imageId")
	if !ok {
		return
	}

	if err := h.imageService.Delete(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
