package models

import "time"

// Category groups works under a named, sluggified heading. The slug is
// derived from the name and unique within its owner's scope.
type Category struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_categories_user_slug" json:"user_id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug         string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_categories_user_slug" json:"slug"`
	Description  *string   `gorm:"type:varchar(500)" json:"description"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Works []Work `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"works,omitempty"`
}
