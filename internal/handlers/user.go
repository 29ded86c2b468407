package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/llum/portfolio-api/internal/dto"
	apierrors "github.com/llum/portfolio-api/internal/errors"
	"github.com/llum/portfolio-api/internal/middleware"
	"github.com/llum/portfolio-api/internal/services"
)

// UserHandler serves the authenticated owner's profile.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetMe returns the authenticated user's editable profile fields.
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.userService.Profile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*user))
}

// UpdateMe applies a partial profile update and returns the updated
// projection. Email and password are not editable here.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateProfileRequest struct {
		Name           *string              `json:"name"`
		Bio            dto.Optional[string] `json:"bio"`
		HomeBanner     dto.Optional[string] `json:"home_banner"`
		ProfilePicture dto.Optional[string] `json:"profile_picture"`
		ContactEmail   dto.Optional[string] `json:"contact_email"`
		Instagram      dto.Optional[string] `json:"instagram"`
		Substack       dto.Optional[string] `json:"substack"`
		Location       dto.Optional[string] `json:"location"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(userID, services.UpdateProfileInput{
		Name:           req.Name,
		Bio:            req.Bio,
		HomeBanner:     req.HomeBanner,
		ProfilePicture: req.ProfilePicture,
		ContactEmail:   req.ContactEmail,
		Instagram:      req.Instagram,
		Substack:       req.Substack,
		Location:       req.Location,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*user))
}
