package services

import (
	"errors"
	"fmt"

	"github.com/llum/portfolio-api/internal/constants"
	"github.com/llum/portfolio-api/internal/dto"
	"github.com/llum/portfolio-api/internal/models"
	"github.com/llum/portfolio-api/internal/repository"
	"github.com/llum/portfolio-api/internal/validation"
	"gorm.io/gorm"
)

// UserService handles profile reads and partial updates for the
// authenticated user. Email and password are not editable here.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Profile returns the user's editable profile fields.
func (s *UserService) Profile(userID uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateProfileInput carries the partial profile update. Optional
// fields distinguish absent (untouched) from explicit null (cleared).
type UpdateProfileInput struct {
	Name           *string
	Bio            dto.Optional[string]
	HomeBanner     dto.Optional[string]
	ProfilePicture dto.Optional[string]
	ContactEmail   dto.Optional[string]
	Instagram      dto.Optional[string]
	Substack       dto.Optional[string]
	Location       dto.Optional[string]
}

// UpdateProfile persists only the supplied fields and returns the
// updated user.
func (s *UserService) UpdateProfile(userID uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	var verrs validation.Errors
	if input.Name != nil {
		verrs.RequiredString("name", *input.Name, constants.MaxUserNameLength)
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	applyOptional(&user.Bio, input.Bio)
	applyOptional(&user.HomeBanner, input.HomeBanner)
	applyOptional(&user.ProfilePicture, input.ProfilePicture)
	applyOptional(&user.ContactEmail, input.ContactEmail)
	applyOptional(&user.Instagram, input.Instagram)
	applyOptional(&user.Substack, input.Substack)
	applyOptional(&user.Location, input.Location)

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// applyOptional writes an Optional string onto a nullable column:
// absent keeps the current value, null clears it, a value replaces it.
func applyOptional(target **string, opt dto.Optional[string]) {
	if !opt.Set {
		return
	}
	*target = opt.ValuePtr()
}
