package models

import "time"

// WorkSectionImage references one externally hosted image inside a
// section. The URL is stored as an opaque string; images are arranged
// by ascending order, ties broken by ID.
type WorkSectionImage struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	WorkSectionID uint64    `gorm:"not null;index" json:"work_section_id"`
	ImageURL      string    `gorm:"type:varchar(1024);not null" json:"image_url"`
	DisplayOrder  int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	WorkSection WorkSection `gorm:"foreignKey:WorkSectionID" json:"-"`
}
