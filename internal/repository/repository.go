package repository

import "github.com/llum/portfolio-api/internal/models"

// childOrder is the stable ordering contract for every child listing:
// ascending display order, ties broken by insertion order.
const childOrder = "display_order ASC, id ASC"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by login email
	FindByEmail(email string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// Create creates a new category
	Create(category *models.Category) error

	// FindByID finds a category by ID
	FindByID(id uint64) (*models.Category, error)

	// ListByUser lists a user's categories in display order
	ListByUser(userID uint64) ([]models.Category, error)

	// SlugExists reports whether the slug is taken within the user's
	// scope, ignoring the row with excludeID (0 to exclude nothing).
	SlugExists(userID uint64, slug string, excludeID uint64) (bool, error)

	// Update persists changes to a category
	Update(category *models.Category) error

	// Delete removes a category and cascades through its works,
	// sections and images in one transaction.
	Delete(id uint64) error
}

// WorkRepository defines the interface for work data access
type WorkRepository interface {
	// Create creates a new work
	Create(work *models.Work) error

	// FindByID finds a work by ID
	FindByID(id uint64) (*models.Work, error)

	// ListByCategory lists a category's works in display order
	ListByCategory(categoryID uint64) ([]models.Work, error)

	// ListByUser lists every work of a user with its category, for the
	// admin table view
	ListByUser(userID uint64) ([]models.Work, error)

	// Update persists changes to a work
	Update(work *models.Work) error

	// Delete removes a work and cascades through its sections and
	// images in one transaction.
	Delete(id uint64) error
}

// WorkSectionRepository defines the interface for section data access
type WorkSectionRepository interface {
	// Create creates a new section
	Create(section *models.WorkSection) error

	// FindByID finds a section by ID
	FindByID(id uint64) (*models.WorkSection, error)

	// ListByWork lists a work's sections in display order, each with
	// its images in display order
	ListByWork(workID uint64) ([]models.WorkSection, error)

	// Update persists changes to a section
	Update(section *models.WorkSection) error

	// Delete removes a section and its images in one transaction.
	Delete(id uint64) error
}

// WorkSectionImageRepository defines the interface for image data access
type WorkSectionImageRepository interface {
	// Create creates a new image reference
	Create(image *models.WorkSectionImage) error

	// FindByID finds an image by ID
	FindByID(id uint64) (*models.WorkSectionImage, error)

	// Update persists changes to an image
	Update(image *models.WorkSectionImage) error

	// Delete removes an image
	Delete(id uint64) error
}
