package repository

import (
	"github.com/llum/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkSectionImageRepository is a GORM implementation of WorkSectionImageRepository
type GormWorkSectionImageRepository struct {
	db *gorm.DB
}

// NewWorkSectionImageRepository creates a new WorkSectionImageRepository
func NewWorkSectionImageRepository(db *gorm.DB) WorkSectionImageRepository {
	return &GormWorkSectionImageRepository{db: db}
}

// Create creates a new image reference
func (r *GormWorkSectionImageRepository) Create(image *models.WorkSectionImage) error {
	return r.db.Create(image).Error
}

// FindByID finds an image by ID
func (r *GormWorkSectionImageRepository) FindByID(id uint64) (*models.WorkSectionImage, error) {
	var image models.WorkSectionImage
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// Update persists changes to an image
func (r *GormWorkSectionImageRepository) Update(image *models.WorkSectionImage) error {
	return r.db.Save(image).Error
}

// Delete removes an image
func (r *GormWorkSectionImageRepository) Delete(id uint64) error {
	return r.db.Delete(&models.WorkSectionImage{}, id).Error
}
