package models

import "time"

// WorkSectionType selects the layout the UI renders a section with.
// The value itself is part of the persisted contract and round-trips
// exactly.
type WorkSectionType string

const (
	SectionImageLeftTextRight   WorkSectionType = "IMAGE_LEFT_TEXT_RIGHT"
	SectionImageRightTextLeft   WorkSectionType = "IMAGE_RIGHT_TEXT_LEFT"
	SectionImageCenterTextBelow WorkSectionType = "IMAGE_CENTER_TEXT_BELOW"
	SectionTextOnly             WorkSectionType = "TEXT_ONLY"
	SectionImageOnly            WorkSectionType = "IMAGE_ONLY"
)

// Valid reports whether t is one of the known section types.
func (t WorkSectionType) Valid() bool {
	switch t {
	case SectionImageLeftTextRight,
		SectionImageRightTextLeft,
		SectionImageCenterTextBelow,
		SectionTextOnly,
		SectionImageOnly:
		return true
	}
	return false
}

// WorkSection is an ordered content block within a work.
type WorkSection struct {
	ID           uint64          `gorm:"primarykey" json:"id"`
	WorkID       uint64          `gorm:"not null;index" json:"work_id"`
	Type         WorkSectionType `gorm:"type:varchar(32);not null" json:"type"`
	Text         *string         `gorm:"type:text" json:"text"`
	DisplayOrder int             `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Relations
	Work   Work               `gorm:"foreignKey:WorkID" json:"-"`
	Images []WorkSectionImage `gorm:"foreignKey:WorkSectionID;constraint:OnDelete:CASCADE" json:"images"`
}
