package services

import "errors"

// Sentinel errors shared across the resource services. Handlers map
// these onto the HTTP error taxonomy.
var (
	ErrNotOwner         = errors.New("resource belongs to another user")
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrWorkNotFound     = errors.New("work not found")
	ErrSectionNotFound  = errors.New("section not found")
	ErrImageNotFound    = errors.New("image not found")
)
