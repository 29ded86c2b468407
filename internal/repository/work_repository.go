package repository

import (
	"github.com/llum/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkRepository is a GORM implementation of WorkRepository
type GormWorkRepository struct {
	db *gorm.DB
}

// NewWorkRepository creates a new WorkRepository
func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &GormWorkRepository{db: db}
}

// Create creates a new work
func (r *GormWorkRepository) Create(work *models.Work) error {
	return r.db.Create(work).Error
}

// FindByID finds a work by ID
func (r *GormWorkRepository) FindByID(id uint64) (*models.Work, error) {
	var work models.Work
	if err := r.db.First(&work, id).Error; err != nil {
		return nil, err
	}
	return &work, nil
}

// ListByCategory lists a category's works in display order
func (r *GormWorkRepository) ListByCategory(categoryID uint64) ([]models.Work, error) {
	var works []models.Work
	err := r.db.
		Where("category_id = ?", categoryID).
		Order(childOrder).
		Find(&works).Error
	if err != nil {
		return nil, err
	}
	return works, nil
}

// ListByUser lists every work of a user with its category preloaded
func (r *GormWorkRepository) ListByUser(userID uint64) ([]models.Work, error) {
	var works []models.Work
	err := r.db.
		Where("user_id = ?", userID).
		Preload("Category").
		Order(childOrder).
		Find(&works).Error
	if err != nil {
		return nil, err
	}
	return works, nil
}

// Update persists changes to a work
func (r *GormWorkRepository) Update(work *models.Work) error {
	return r.db.Save(work).Error
}

// Delete removes a work, its sections and their images atomically
func (r *GormWorkRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		sectionIDs := tx.Model(&models.WorkSection{}).
			Select("id").
			Where("work_id = ?", id)
		if err := tx.Where("work_section_id IN (?)", sectionIDs).
			Delete(&models.WorkSectionImage{}).Error; err != nil {
			return err
		}

		if err := tx.Where("work_id = ?", id).
			Delete(&models.WorkSection{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Work{}, id).Error
	})
}
