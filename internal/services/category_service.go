package services

import (
	"errors"
	"fmt"

	"github.com/llum/portfolio-api/internal/constants"
	"github.com/llum/portfolio-api/internal/dto"
	"github.com/llum/portfolio-api/internal/models"
	"github.com/llum/portfolio-api/internal/repository"
	"github.com/llum/portfolio-api/internal/utils"
	"github.com/llum/portfolio-api/internal/validation"
	"gorm.io/gorm"
)

// ErrSlugTaken is returned when a category name slugs to a slug another
// category of the same owner already uses.
var ErrSlugTaken = errors.New("a category with this slug already exists")

// CategoryService handles category business logic, including slug
// derivation and the ownership boundary.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, userRepo repository.UserRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// ListForUser returns the user's categories in display order. The user
// must exist.
func (s *CategoryService) ListForUser(userID uint64) ([]models.Category, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	categories, err := s.categoryRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategoryInput represents input for creating a category.
type CreateCategoryInput struct {
	UserID      uint64
	Name        string
	Description *string
	Order       *int
}

// Create validates the input, derives the slug from the name and
// persists the category.
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	var verrs validation.Errors
	verrs.RequiredString("name", input.Name, constants.MaxCategoryNameLength)
	verrs.MaxString("description", input.Description, constants.MaxCategoryDescriptionLength)
	verrs.NonNegative("order", input.Order)

	slug := utils.Slugify(input.Name)
	if input.Name != "" && slug == "" {
		verrs.Add("name", "must contain at least one letter or digit")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	taken, err := s.categoryRepo.SlugExists(input.UserID, slug, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	category := &models.Category{
		UserID: input.UserID,
		Name:   input.Name,
		Slug:   slug,
	}
	if input.Description != nil {
		category.Description = input.Description
	}
	if input.Order != nil {
		category.DisplayOrder = *input.Order
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// UpdateCategoryInput represents a partial category update. Renaming
// regenerates the slug; the old slug is not kept.
type UpdateCategoryInput struct {
	Name        *string
	Description dto.Optional[string]
	Order       *int
}

// Update applies only the supplied fields. The actor must own the
// category.
func (s *CategoryService) Update(id, actorID uint64, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.findOwned(id, actorID)
	if err != nil {
		return nil, err
	}

	var verrs validation.Errors
	if input.Name != nil {
		verrs.RequiredString("name", *input.Name, constants.MaxCategoryNameLength)
	}
	if input.Description.Set && !input.Description.Null {
		verrs.MaxString("description", &input.Description.Value, constants.MaxCategoryDescriptionLength)
	}
	verrs.NonNegative("order", input.Order)

	var slug string
	if input.Name != nil {
		slug = utils.Slugify(*input.Name)
		if *input.Name != "" && slug == "" {
			verrs.Add("name", "must contain at least one letter or digit")
		}
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	if input.Name != nil && slug != category.Slug {
		taken, err := s.categoryRepo.SlugExists(category.UserID, slug, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}

	if input.Name != nil {
		category.Name = *input.Name
		category.Slug = slug
	}
	if input.Description.Set {
		category.Description = input.Description.ValuePtr()
	}
	if input.Order != nil {
		category.DisplayOrder = *input.Order
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// Delete removes the category and cascades through its works, sections
// and images. The actor must own the category.
func (s *CategoryService) Delete(id, actorID uint64) error {
	if _, err := s.findOwned(id, actorID); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// findOwned loads a category and enforces the ownership boundary.
// Existence is checked before ownership: a missing category is 404, a
// foreign one is 403.
func (s *CategoryService) findOwned(id, actorID uint64) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
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
