package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/ShantiHimalaya/shanti-go/pkg/config"
)

const mealItemColumns = `id, name, description, price, category, spice_level, is_vegetarian, is_breakfast, is_lunch, is_dinner, created_at, updated_at`

type MealItemRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewMealItemRepository(db *sql.DB, logger *logging.ChanneledLogger) *MealItemRepository {
	return &MealItemRepository{db: db, logger: logger}
}

func (r *MealItemRepository) FindByID(id string) (*catalog.MealItem, error) {
	query := `SELECT ` + mealItemColumns + ` FROM meal_items WHERE id = ?`

	r.logger.Database().Debug("Loading meal item from database", "id", id)

	item, err := scanMealItem(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan meal item", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan meal item: %w", err)
	}
	return item, nil
}

func (r *MealItemRepository) FindAll(filter repositories.ListFilter) ([]*catalog.MealItem, error) {
	clauses, args := listClauses(filter, "name")
	query := `SELECT ` + mealItemColumns + ` FROM meal_items` + clauses
	return r.queryMany(query, args...)
}

// FindByMealTime returns items flagged for a meal time: breakfast, lunch or dinner.
func (r *MealItemRepository) FindByMealTime(mealTime string) ([]*catalog.MealItem, error) {
	var column string
	switch mealTime {
	case "breakfast":
		column = "is_breakfast"
	case "lunch":
		column = "is_lunch"
	case "dinner":
		column = "is_dinner"
	default:
		return nil, fmt.Errorf("unknown meal time: %s", mealTime)
	}

	query := `SELECT ` + mealItemColumns + ` FROM meal_items WHERE ` + column + ` = 1 ORDER BY name ASC`
	return r.queryMany(query)
}

func (r *MealItemRepository) queryMany(query string, args ...any) ([]*catalog.MealItem, error) {
	start := time.Now()
	r.logger.Database().Debug("Loading meal items from database")

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query meal items", "error", err.Error())
		return nil, fmt.Errorf("failed to query meal items: %w", err)
	}
	defer rows.Close()

	items := []*catalog.MealItem{}
	for rows.Next() {
		item, err := scanMealItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meal item: %w", err)
		}
		items = append(items, item)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Loaded meal items from database", "count", len(items), "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return items, rows.Err()
}

func (r *MealItemRepository) Store(item *catalog.MealItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO meal_items (id, name, description, price, category, spice_level, is_vegetarian, is_breakfast, is_lunch, is_dinner, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	r.logger.Database().Debug("Executing meal item insert", "id", item.ID)

	_, err := r.db.Exec(query, item.ID, item.Name, item.Description, item.Price, item.Category,
		item.SpiceLevel, item.IsVegetarian, item.IsBreakfast, item.IsLunch, item.IsDinner, item.CreatedAt)
	if err != nil {
		r.logger.Database().Error("Meal item insert failed", "error", err.Error(), "id", item.ID)
		return fmt.Errorf("failed to insert meal item: %w", err)
	}
	return nil
}

func (r *MealItemRepository) Update(item *catalog.MealItem) error {
	now := time.Now().UTC()
	item.UpdatedAt = &now

	query := `UPDATE meal_items SET name = ?, description = ?, price = ?, category = ?, spice_level = ?,
              is_vegetarian = ?, is_breakfast = ?, is_lunch = ?, is_dinner = ?, updated_at = ? WHERE id = ?`

	r.logger.Database().Debug("Executing meal item update", "id", item.ID)

	_, err := r.db.Exec(query, item.Name, item.Description, item.Price, item.Category, item.SpiceLevel,
		item.IsVegetarian, item.IsBreakfast, item.IsLunch, item.IsDinner, item.UpdatedAt, item.ID)
	if err != nil {
		r.logger.Database().Error("Meal item update failed", "error", err.Error(), "id", item.ID)
		return fmt.Errorf("failed to update meal item: %w", err)
	}
	return nil
}

func (r *MealItemRepository) Delete(id string) error {
	query := `DELETE FROM meal_items WHERE id = ?`

	r.logger.Database().Debug("Executing meal item delete", "id", id)
	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Meal item delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete meal item: %w", err)
	}
	return nil
}

func scanMealItem(row rowScanner) (*catalog.MealItem, error) {
	var item catalog.MealItem
	var updatedAt sql.NullTime

	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.SpiceLevel, &item.IsVegetarian, &item.IsBreakfast, &item.IsLunch, &item.IsDinner,
		&item.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	item.UpdatedAt = timeOrNil(updatedAt)
	return &item, nil
}

// DiningScheduleRepository manages the fixed meal-time rows seeded at install.
type DiningScheduleRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewDiningScheduleRepository(db *sql.DB, logger *logging.ChanneledLogger) *DiningScheduleRepository {
	return &DiningScheduleRepository{db: db, logger: logger}
}

func (r *DiningScheduleRepository) FindAll() ([]*catalog.DiningSchedule, error) {
	query := `SELECT id, meal_type, time, description, created_at, updated_at FROM dining_schedule
              ORDER BY CASE meal_type WHEN 'breakfast' THEN 1 WHEN 'lunch' THEN 2 ELSE 3 END`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query dining schedule", "error", err.Error())
		return nil, fmt.Errorf("failed to query dining schedule: %w", err)
	}
	defer rows.Close()

	entries := []*catalog.DiningSchedule{}
	for rows.Next() {
		var entry catalog.DiningSchedule
		var updatedAt sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.MealType, &entry.Time, &entry.Description,
			&entry.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dining schedule: %w", err)
		}
		entry.UpdatedAt = timeOrNil(updatedAt)
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

func (r *DiningScheduleRepository) Update(entry *catalog.DiningSchedule) error {
	now := time.Now().UTC()
	entry.UpdatedAt = &now

	query := `UPDATE dining_schedule SET time = ?, description = ?, updated_at = ? WHERE id = ?`

	r.logger.Database().Debug("Executing dining schedule update", "id", entry.ID)
	if _, err := r.db.Exec(query, entry.Time, entry.Description, entry.UpdatedAt, entry.ID); err != nil {
		r.logger.Database().Error("Dining schedule update failed", "error", err.Error(), "id", entry.ID)
		return fmt.Errorf("failed to update dining schedule: %w", err)
	}
	return nil
}
