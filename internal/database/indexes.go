package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes creates the lookup and ordering indexes the list queries
// depend on. Parent-ID indexes come from the model tags; these cover
// the parent-plus-order scans.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"categories", "idx_categories_user_order", "user_id, display_order"},
		{"works", "idx_works_category_order", "category_id, display_order"},
		{"work_sections", "idx_work_sections_work_order", "work_id, display_order"},
		{"work_section_images", "idx_work_section_images_section_order", "work_section_id, display_order"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
