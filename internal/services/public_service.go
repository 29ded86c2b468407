package services

import (
	"errors"
	"fmt"

	"github.com/llum/portfolio-api/internal/models"
	"github.com/llum/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

// PublicService resolves the single portfolio owner for the
// unauthenticated read surface. The owner is the user with the
// configured email, set at provisioning, rather than an implicit
// earliest-created-user query.
type PublicService struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	ownerEmail   string
}

// NewPublicService creates a new PublicService.
func NewPublicService(userRepo repository.UserRepository, categoryRepo repository.CategoryRepository, ownerEmail string) *PublicService {
	return &PublicService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		ownerEmail:   ownerEmail,
	}
}

// Owner returns the configured portfolio owner.
func (s *PublicService) Owner() (*models.User, error) {
	user, err := s.userRepo.FindByEmail(s.ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find owner: %w", err)
	}
	return user, nil
}

// OwnerCategories returns the owner's categories in display order. A
// missing owner yields an empty list, not an error.
func (s *PublicService) OwnerCategories() ([]models.Category, error) {
	owner, err := s.Owner()
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return []models.Category{}, nil
		}
		return nil, err
	}

	categories, err := s.categoryRepo.ListByUser(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
