package models

import "time"

// Work is a single project or post inside a category. DateLabel is a
// free-text label ("Summer 2021"), not a calendar date.
type Work struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserID       uint64    `gorm:"not null;index" json:"user_id"`
	CategoryID   uint64    `gorm:"not null;index" json:"category_id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  *string   `gorm:"type:varchar(1000)" json:"description"`
	Introduction *string   `gorm:"type:text" json:"introduction"`
	DateLabel    *string   `gorm:"type:varchar(200)" json:"date_label"`
	Banner       *string   `gorm:"type:varchar(1024)" json:"banner"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Category *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Sections []WorkSection `gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`
}
