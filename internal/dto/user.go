package dto

import "github.com/llum/portfolio-api/internal/models"

// ProfileDTO is the editable profile projection returned by /user/me.
// Login email and password hash are never part of it.
type ProfileDTO struct {
	Name           string  `json:"name"`
	Bio            *string `json:"bio"`
	HomeBanner     *string `json:"home_banner"`
	ProfilePicture *string `json:"profile_picture"`
	ContactEmail   *string `json:"contact_email"`
	Instagram      *string `json:"instagram"`
	Substack       *string `json:"substack"`
	Location       *string `json:"location"`
}

// PublicUserDTO is the unauthenticated projection of the portfolio owner.
type PublicUserDTO struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	Bio            *string `json:"bio"`
	HomeBanner     *string `json:"home_banner"`
	ProfilePicture *string `json:"profile_picture"`
	ContactEmail   *string `json:"contact_email"`
	Instagram      *string `json:"instagram"`
	Substack       *string `json:"substack"`
	Location       *string `json:"location"`
}

// ToProfileDTO converts a User model to its editable projection.
func ToProfileDTO(user models.User) ProfileDTO {
	return ProfileDTO{
		Name:           user.Name,
		Bio:            user.Bio,
		HomeBanner:     user.HomeBanner,
		ProfilePicture: user.ProfilePicture,
		ContactEmail:   user.ContactEmail,
		Instagram:      user.Instagram,
		Substack:       user.Substack,
		Location:       user.Location,
	}
}

// ToPublicUserDTO converts a User model to its public projection.
func ToPublicUserDTO(user models.User) PublicUserDTO {
	return PublicUserDTO{
		ID:             user.ID,
		Name:           user.Name,
		Bio:            user.Bio,
		HomeBanner:     user.HomeBanner,
		ProfilePicture: user.ProfilePicture,
		ContactEmail:   user.ContactEmail,
		Instagram:      user.Instagram,
		Substack:       user.Substack,
		Location:       user.Location,
	}
}
