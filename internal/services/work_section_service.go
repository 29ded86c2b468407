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

// WorkSectionService handles section business logic. Ownership resolves
// through the parent work.
type WorkSectionService struct {
	sectionRepo repository.WorkSectionRepository
	workRepo    repository.WorkRepository
}

// NewWorkSectionService creates a new WorkSectionService.
func NewWorkSectionService(sectionRepo repository.WorkSectionRepository, workRepo repository.WorkRepository) *WorkSectionService {
	return &WorkSectionService{
		sectionRepo: sectionRepo,
		workRepo:    workRepo,
	}
}

// ListByWork returns the work's sections with nested ordered images.
// The work must exist.
func (s *WorkSectionService) ListByWork(workID uint64) ([]models.WorkSection, error) {
	if _, err := s.workRepo.FindByID(workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to find work: %w", err)
	}

	sections, err := s.sectionRepo.ListByWork(workID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

// CreateSectionInput represents input for creating a section.
type CreateSectionInput struct {
	ActorID uint64
	WorkID  uint64
	Type    string
	Text    *string
	Order   *int
}

// Create validates the input and persists the section under the
// actor's work.
func (s *WorkSectionService) Create(input CreateSectionInput) (*models.WorkSection, error) {
	var verrs validation.Errors
	sectionType := models.WorkSectionType(input.Type)
	if !sectionType.Valid() {
		verrs.Add("type", "must be a valid section type")
	}
	verrs.MaxString("text", input.Text, constants.MaxSectionTextLength)
	verrs.NonNegative("order", input.Order)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	work, err := s.ownedWork(input.WorkID, input.ActorID)
	if err != nil {
		return nil, err
	}

	section := &models.WorkSection{
		WorkID: work.ID,
		Type:   sectionType,
		Text:   input.Text,
	}
	if input.Order != nil {
		section.DisplayOrder = *input.Order
	}

	if err := s.sectionRepo.Create(section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	return section, nil
}

// UpdateSectionInput represents a partial section update.
type UpdateSectionInput struct {
	Type  *string
	Text  dto.Optional[string]
	Order *int
}

// Update applies only the supplied fields. The actor must own the
// section's work.
func (s *WorkSectionService) Update(id, actorID uint64, input UpdateSectionInput) (*models.WorkSection, error) {
	section, err := s.findOwned(id, actorID)
	if err != nil {
		return nil, err
	}

	var verrs validation.Errors
	if input.Type != nil && !models.WorkSectionType(*input.Type).Valid() {
		verrs.Add("type", "must be a valid section type")
	}
	if input.Text.Set && !input.Text.Null {
		verrs.MaxString("text", &input.Text.Value, constants.MaxSectionTextLength)
	}
	verrs.NonNegative("order", input.Order)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	if input.Type != nil {
		section.Type = models.WorkSectionType(*input.Type)
	}
	if input.Text.Set {
		section.Text = input.Text.ValuePtr()
	}
	if input.Order != nil {
		section.DisplayOrder = *input.Order
	}

	if err := s.sectionRepo.Update(section); err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}

	return section, nil
}

// Delete removes the section and its images. The actor must own the
// section's work.
func (s *WorkSectionService) Delete(id, actorID uint64) error {
	if _, err := s.findOwned(id, actorID); err != nil {
		return err
	}

	if err := s.sectionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}

// FindOwned loads a section and enforces ownership through its work,
// for the image service.
func (s *WorkSectionService) FindOwned(id, actorID uint64) (*models.WorkSection, error) {
	return s.findOwned(id, actorID)
}

func (s *WorkSectionService) findOwned(id, actorID uint64) (*models.WorkSection, error) {
	section, err := s.sectionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to find section: %w", err)
	}

	if _, err := s.ownedWork(section.WorkID, actorID); err != nil {
		return nil, err
	}

	return section, nil
}

func (s *WorkSectionService) ownedWork(workID, actorID uint64) (*models.Work, error) {
	work, err := s.workRepo.FindByID(workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to find work: %w", err)
	}
	if work.UserID != actorID {
		return nil, ErrNotOwner
	}
	return work, nil
}
