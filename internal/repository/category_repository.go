package repository

import (
	"github.com/llum/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormCategoryRepository is a GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create creates a new category
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// FindByID finds a category by ID
func (r *GormCategoryRepository) FindByID(id uint64) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListByUser lists a user's categories in display order
func (r *GormCategoryRepository) ListByUser(userID uint64) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Where("user_id = ?", userID).
		Order(childOrder).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// SlugExists reports whether the slug is taken within the user's scope
func (r *GormCategoryRepository) SlugExists(userID uint64, slug string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.Model(&models.Category{}).
		Where("user_id = ? AND slug = ?", userID, slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists changes to a category
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category and everything under it atomically
func (r *GormCategoryRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		sectionIDs := tx.Model(&models.WorkSection{}).
			Select("work_sections.id").
			Joins("JOIN works ON works.id = work_sections.work_id").
			Where("works.category_id = ?", id)
		if err := tx.Where("work_section_id IN (?)", sectionIDs).
			Delete(&models.WorkSectionImage{}).Error; err != nil {
			return err
		}

		workIDs := tx.Model(&models.Work{}).
			Select("id").
			Where("category_id = ?", id)
		if err := tx.Where("work_id IN (?)", workIDs).
			Delete(&models.WorkSection{}).Error; err != nil {
			return err
		}

		if err := tx.Where("category_id = ?", id).
			Delete(&models.Work{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Category{}, id).Error
	})
}
