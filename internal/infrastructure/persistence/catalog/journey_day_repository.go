package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/ShantiHimalaya/shanti-go/pkg/config"
)

type JourneyDayRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewJourneyDayRepository(db *sql.DB, logger *logging.ChanneledLogger) *JourneyDayRepository {
	return &JourneyDayRepository{db: db, logger: logger}
}

func (r *JourneyDayRepository) FindByJourneyID(journeyID string) ([]*catalog.JourneyDay, error) {
	query := `SELECT id, journey_id, day_number, title, description, image_url, created_at, updated_at
              FROM journey_days WHERE journey_id = ? ORDER BY day_number ASC`

	start := time.Now()
	r.logger.Database().Debug("Loading journey days from database", "journeyId", journeyID)

	rows, err := r.db.Query(query, journeyID)
	if err != nil {
		r.logger.Database().Error("Failed to query journey days", "error", err.Error(), "journeyId", journeyID)
		return nil, fmt.Errorf("failed to query journey days: %w", err)
	}
	defer rows.Close()

	days := []*catalog.JourneyDay{}
	for rows.Next() {
		var day catalog.JourneyDay
		var title, description, imageURL sql.NullString
		var updatedAt sql.NullTime

		if err := rows.Scan(&day.ID, &day.JourneyID, &day.DayNumber, &title, &description,
			&imageURL, &day.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journey day: %w", err)
		}
		day.Title = strOrNil(title)
		day.Description = strOrNil(description)
		day.ImageURL = strOrNil(imageURL)
		day.UpdatedAt = timeOrNil(updatedAt)
		days = append(days, &day)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return days, rows.Err()
}

func (r *JourneyDayRepository) Store(day *catalog.JourneyDay) error {
	if day.CreatedAt.IsZero() {
		day.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO journey_days (id, journey_id, day_number, title, description, image_url, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing journey day insert", "id", day.ID, "journeyId", day.JourneyID)

	_, err := r.db.Exec(query, day.ID, day.JourneyID, day.DayNumber, day.Title,
		day.Description, day.ImageURL, day.CreatedAt)
	if err != nil {
		r.logger.Database().Error("Journey day insert failed", "error", err.Error(), "id", day.ID)
		return fmt.Errorf("failed to insert journey day: %w", err)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *JourneyDayRepository) Update(day *catalog.JourneyDay) error {
	now := time.Now().UTC()
	day.UpdatedAt = &now

	query := `UPDATE journey_days SET day_number = ?, title = ?, description = ?, image_url = ?, updated_at = ?
              WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing journey day update", "id", day.ID)

	_, err := r.db.Exec(query, day.DayNumber, day.Title, day.Description, day.ImageURL, day.UpdatedAt, day.ID)
	if err != nil {
		r.logger.Database().Error("Journey day update failed", "error", err.Error(), "id", day.ID)
		return fmt.Errorf("failed to update journey day: %w", err)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *JourneyDayRepository) Delete(id string) error {
	query := `DELETE FROM journey_days WHERE id = ?`

	r.logger.Database().Debug("Executing journey day delete", "id", id)
	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Journey day delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete journey day: %w", err)
	}
	return nil
}
