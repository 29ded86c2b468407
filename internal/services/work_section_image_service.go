package services

import (
	"errors"
	"fmt"

	"github.com/llum/portfolio-api/internal/models"
	"github.com/llum/portfolio-api/internal/repository"
	"github.com/llum/portfolio-api/internal/validation"
	"gorm.io/gorm"
)

// WorkSectionImageService handles image references. Ownership resolves
// image -> section -> work -> user.
type WorkSectionImageService struct {
	imageRepo      repository.WorkSectionImageRepository
	sectionService *WorkSectionService
}

// NewWorkSectionImageService creates a new WorkSectionImageService.
func NewWorkSectionImageService(imageRepo repository.WorkSectionImageRepository, sectionService *WorkSectionService) *WorkSectionImageService {
	return &WorkSectionImageService{
		imageRepo:      imageRepo,
		sectionService: sectionService,
	}
}

// CreateImageInput represents input for adding an image to a section.
type CreateImageInput struct {
	ActorID   uint64
	SectionID uint64
	ImageURL  string
	Order     *int
}

// Create validates the input and persists the image under the actor's
// section. The URL is stored as an opaque string.
func (s *WorkSectionImageService) Create(input CreateImageInput) (*models.WorkSectionImage, error) {
	var verrs validation.Errors
	if input.ImageURL == "" {
		verrs.Add("image_url", "is required")
	}
	verrs.NonNegative("order", input.Order)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	section, err := s.sectionService.FindOwned(input.SectionID, input.ActorID)
	if err != nil {
		return nil, err
	}

	image := &models.WorkSectionImage{
		WorkSectionID: section.ID,
		ImageURL:      input.ImageURL,
	}
	if input.Order != nil {
		image.DisplayOrder = *input.Order
	}

	if err := s.imageRepo.Create(image); err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	return image, nil
}

// UpdateImageInput represents a partial image update.
type UpdateImageInput struct {
	ImageURL *string
	Order    *int
}

// Update applies only the supplied fields. The actor must own the
// image's parent chain.
func (s *WorkSectionImageService) Update(id, actorID uint64, input UpdateImageInput) (*models.WorkSectionImage, error) {
	image, err := s.findOwned(id, actorID)
	if err != nil {
		return nil, err
	}

	var verrs validation.Errors
	if input.ImageURL != nil && *input.ImageURL == "" {
		verrs.Add("image_url", "cannot be empty")
	}
	verrs.NonNegative("order", input.Order)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	if input.ImageURL != nil {
		image.ImageURL = *input.ImageURL
	}
	if input.Order != nil {
		image.DisplayOrder = *input.Order
	}

	if err := s.imageRepo.Update(image); err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}

	return image, nil
}

// Delete removes the image. The actor must own the image's parent chain.
func (s *WorkSectionImageService) Delete(id, actorID uint64) error {
	if _, err := s.findOwned(id, actorID); err != nil {
		return err
	}

	if err := s.imageRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func (s *WorkSectionImageService) findOwned(id, actorID uint64) (*models.WorkSectionImage, error) {
	image, err := s.imageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to find image: %w", err)
	}

	if _, err := s.sectionService.FindOwned(image.WorkSectionID, actorID); err != nil {
		return nil, err
	}

	return image, nil
}
