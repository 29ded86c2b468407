package dto

import "github.com/llum/portfolio-api/internal/models"

// PublicCategoryDTO is the minimal category projection used by the
// public navigation.
type PublicCategoryDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Order int    `json:"order"`
}

// ToPublicCategoryDTO converts a Category model to its public projection.
func ToPublicCategoryDTO(category models.Category) PublicCategoryDTO {
	return PublicCategoryDTO{
		ID:    category.ID,
		Name:  category.Name,
		Slug:  category.Slug,
		Order: category.DisplayOrder,
	}
}

// ToPublicCategoryDTOs converts a slice of categories, preserving order.
func ToPublicCategoryDTOs(categories []models.Category) []PublicCategoryDTO {
	items := make([]PublicCategoryDTO, len(categories))
	for i, category := range categories {
		items[i] = ToPublicCategoryDTO(category)
	}
	return items
}
