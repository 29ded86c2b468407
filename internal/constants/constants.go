package constants

import "time"

// ContextKeyUserID is the gin context key holding the authenticated user ID.
const ContextKeyUserID = "userID"

// TokenTTL is the validity window of issued bearer tokens.
const TokenTTL = 7 * 24 * time.Hour

// Field length limits shared by create and update validation.
const (
	MaxCategoryNameLength        = 100
	MaxCategoryDescriptionLength = 500
	MaxWorkTitleLength           = 200
	MaxWorkDescriptionLength     = 1000
	MaxWorkIntroductionLength    = 5000
	MaxWorkDateLabelLength       = 200
	MaxSectionTextLength         = 5000
	MaxUserNameLength            = 100
)
