package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes creates composite indexes that AutoMigrate's per-column tags
// do not cover. Safe to run repeatedly.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Project list query filters by creator and archived state together
		{"projects", "idx_projects_created_by_archived", "created_by_id, is_archived"},

		// Manual ordering within a project view
		{"tasks", "idx_tasks_project_order", "project_id, sort_order"},

		// Task list filtered by creator and status
		{"tasks", "idx_tasks_created_by_status", "created_by_id, status"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
