package models

import "time"

// User is the portfolio owner. The login email and password hash are
// never serialized; public responses go through the dto projections.
type User struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	PasswordHash   string    `gorm:"type:varchar(255);not null" json:"-"`
	Bio            *string   `gorm:"type:text" json:"bio"`
	HomeBanner     *string   `gorm:"type:varchar(1024)" json:"home_banner"`
	ProfilePicture *string   `gorm:"type:varchar(1024)" json:"profile_picture"`
	ContactEmail   *string   `gorm:"type:varchar(255)" json:"contact_email"`
	Instagram      *string   `gorm:"type:varchar(255)" json:"instagram"`
	Substack       *string   `gorm:"type:varchar(255)" json:"substack"`
	Location       *string   `gorm:"type:varchar(255)" json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Categories []Category `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Works      []Work     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
