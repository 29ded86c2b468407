package repository

import (
	"github.com/llum/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkSectionRepository is a GORM implementation of WorkSectionRepository
type GormWorkSectionRepository struct {
	db *gorm.DB
}

// NewWorkSectionRepository creates a new WorkSectionRepository
func NewWorkSectionRepository(db *gorm.DB) WorkSectionRepository {
	return &GormWorkSectionRepository{db: db}
}

// Create creates a new section
func (r *GormWorkSectionRepository) Create(section *models.WorkSection) error {
	return r.db.Create(section).Error
}

// FindByID finds a section by ID
func (r *GormWorkSectionRepository) FindByID(id uint64) (*models.WorkSection, error) {
	var section models.WorkSection
	if err := r.db.First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// ListByWork lists a work's sections with their images, both in display order
func (r *GormWorkSectionRepository) ListByWork(workID uint64) ([]models.WorkSection, error) {
	var sections []models.WorkSection
	err := r.db.
		Where("work_id = ?", workID).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order(childOrder)
		}).
		Order(childOrder).
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

// Update persists changes to a section
func (r *GormWorkSectionRepository) Update(section *models.WorkSection) error {
	return r.db.Save(section).Error
}

// Delete removes a section and its images atomically
func (r *GormWorkSectionRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_section_id = ?", id).
			Delete(&models.WorkSectionImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.WorkSection{}, id).Error
	})
}
