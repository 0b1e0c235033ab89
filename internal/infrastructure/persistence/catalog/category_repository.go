package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
)

type CategoryRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewCategoryRepository(db *sql.DB, logger *logging.ChanneledLogger) *CategoryRepository {
	return &CategoryRepository{db: db, logger: logger}
}

func (r *CategoryRepository) FindAll() ([]*catalog.Category, error) {
	query := `SELECT id, name, created_at FROM categories ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query categories", "error", err.Error())
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []*catalog.Category{}
	for rows.Next() {
		var category catalog.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Store(category *catalog.Category) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`

	r.logger.Database().Debug("Executing category insert", "id", category.ID, "name", category.Name)
	if _, err := r.db.Exec(query, category.ID, category.Name, category.CreatedAt); err != nil {
		r.logger.Database().Error("Category insert failed", "error", err.Error(), "name", category.Name)
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(id string) error {
	query := `DELETE FROM categories WHERE id = ?`

	r.logger.Database().Debug("Executing category delete", "id", id)
	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Category delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
