package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/llum/portfolio-api/internal/errors"
	"github.com/llum/portfolio-api/internal/services"
	"github.com/llum/portfolio-api/internal/validation"
)

// parseIDParam coerces a path parameter to a positive integer. A
// failure is a validation error naming the offending parameter.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequestWithDetails(c, "Validation failed", []validation.FieldError{
			{Field: name, Message: "must be a positive integer"},
		})
		return 0, false
	}
	return id, true
}

// respondServiceError maps service-layer errors onto the HTTP error
// taxonomy. Anything unrecognized is a 500 with the detail logged
// server-side and withheld from the client.
func respondServiceError(c *gin.Context, err error) {
	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs):
		apierrors.BadRequestWithDetails(c, "Validation failed", verrs.Fields)
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrNotOwner):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrWorkNotFound),
		errors.Is(err, services.ErrSectionNotFound),
		errors.Is(err, services.ErrImageNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSlugTaken):
		apierrors.Conflict(c, err.Error())
	default:
		log.Printf("unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		apierrors.InternalError(c, "")
	}
}
