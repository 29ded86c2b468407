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

// WorkService handles work business logic.
type WorkService struct {
	workRepo     repository.WorkRepository
	categoryRepo repository.CategoryRepository
}

// NewWorkService creates a new WorkService.
func NewWorkService(workRepo repository.WorkRepository, categoryRepo repository.CategoryRepository) *WorkService {
	return &WorkService{
		workRepo:     workRepo,
		categoryRepo: categoryRepo,
	}
}

// ListByCategory returns the category's works in display order. The
// category must exist.
func (s *WorkService) ListByCategory(categoryID uint64) ([]models.Work, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	works, err := s.workRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	return works, nil
}

// ListForUser returns every work of the user with categories preloaded,
// for the admin table.
func (s *WorkService) ListForUser(userID uint64) ([]models.Work, error) {
	works, err := s.workRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	return works, nil
}

// CreateWorkInput represents input for creating a work.
type CreateWorkInput struct {
	ActorID      uint64
	CategoryID   uint64
	Title        string
	Description  *string
	Introduction *string
	DateLabel    *string
	Banner       *string
	Order        *int
}

// Create validates the input and persists the work under the actor's
// category.
func (s *WorkService) Create(input CreateWorkInput) (*models.Work, error) {
	var verrs validation.Errors
	verrs.RequiredString("title", input.Title, constants.MaxWorkTitleLength)
	verrs.MaxString("description", input.Description, constants.MaxWorkDescriptionLength)
	verrs.MaxString("introduction", input.Introduction, constants.MaxWorkIntroductionLength)
	verrs.MaxString("date_label", input.DateLabel, constants.MaxWorkDateLabelLength)
	verrs.NonNegative("order", input.Order)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	category, err := s.ownedCategory(input.CategoryID, input.ActorID)
	if err != nil {
		return nil, err
	}

	work := &models.Work{
		UserID:       category.UserID,
		CategoryID:   category.ID,
		Title:        input.Title,
		Description:  input.Description,
		Introduction: input.Introduction,
		DateLabel:    input.DateLabel,
		Banner:       input.Banner,
	}
	if input.Order != nil {
		work.DisplayOrder = *input.Order
	}

	if err := s.workRepo.Create(work); err != nil {
		return nil, fmt.Errorf("failed to create work: %w", err)
	}

	return work, nil
}

// UpdateWorkInput represents a partial work update. A supplied
// CategoryID moves the work to another category of the same owner.
type UpdateWorkInput struct {
	Title        *string
	Description  dto.Optional[string]
	Introduction dto.Optional[string]
	DateLabel    dto.Optional[string]
	Banner       dto.Optional[string]
	CategoryID   *uint64
	Order        *int
}

// Update applies only the supplied fields. The actor must own the work.
func (s *WorkService) Update(id, actorID uint64, input UpdateWorkInput) (*models.Work, error) {
	work, err := s.findOwned(id, actorID)
	if err != nil {
		return nil, err
	}

	var verrs validation.Errors
	if input.Title != nil {
		verrs.RequiredString("title", *input.Title, constants.MaxWorkTitleLength)
	}
	if input.Description.Set && !input.Description.Null {
		verrs.MaxString("description", &input.Description.Value, constants.MaxWorkDescriptionLength)
	}
	if input.Introduction.Set && !input.Introduction.Null {
		verrs.MaxString("introduction", &input.Introduction.Value, constants.MaxWorkIntroductionLength)
	}
	if input.DateLabel.Set && !input.DateLabel.Null {
		verrs.MaxString("date_label", &input.DateLabel.Value, constants.MaxWorkDateLabelLength)
	}
	verrs.NonNegative("order", input.Order)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	if input.CategoryID != nil && *input.CategoryID != work.CategoryID {
		category, err := s.ownedCategory(*input.CategoryID, actorID)
		if err != nil {
			return nil, err
		}
		work.CategoryID = category.ID
	}

	if input.Title != nil {
		work.Title = *input.Title
	}
	if input.Description.Set {
		work.Description = input.Description.ValuePtr()
	}
	if input.Introduction.Set {
		work.Introduction = input.Introduction.ValuePtr()
	}
	if input.DateLabel.Set {
		work.DateLabel = input.DateLabel.ValuePtr()
	}
	if input.Banner.Set {
		work.Banner = input.Banner.ValuePtr()
	}
	if input.Order != nil {
		work.DisplayOrder = *input.Order
	}

	if err := s.workRepo.Update(work); err != nil {
		return nil, fmt.Errorf("failed to update work: %w", err)
	}

	return work, nil
}

// Delete removes the work and cascades through its sections and
// images. The actor must own the work.
func (s *WorkService) Delete(id, actorID uint64) error {
	if _, err := s.findOwned(id, actorID); err != nil {
		return err
	}

	if err := s.workRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}
	return nil
}

// FindOwned loads a work and enforces the ownership boundary, for
// services that anchor child resources on a work.
func (s *WorkService) FindOwned(id, actorID uint64) (*models.Work, error) {
	return s.findOwned(id, actorID)
}

func (s *WorkService) findOwned(id, actorID uint64) (*models.Work, error) {
	work, err := s.workRepo.FindByID(id)
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

func (s *WorkService) ownedCategory(categoryID, actorID uint64) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != actorID {
		return nil, ErrNotOwner
	}
	return category, nil
}
