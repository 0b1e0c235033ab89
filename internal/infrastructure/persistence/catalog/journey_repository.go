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

const journeyColumns = `id, title, description, duration, difficulty, category, activities, image_url, featured, created_at, updated_at`

type JourneyRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewJourneyRepository(db *sql.DB, logger *logging.ChanneledLogger) *JourneyRepository {
	return &JourneyRepository{db: db, logger: logger}
}

func (r *JourneyRepository) FindByID(id string) (*catalog.Journey, error) {
	query := `SELECT ` + journeyColumns + ` FROM journeys WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading journey from database", "id", id)

	journey, err := scanJourney(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan journey", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan journey: %w", err)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return journey, nil
}

func (r *JourneyRepository) FindAll(filter repositories.ListFilter) ([]*catalog.Journey, error) {
	clauses, args := listClauses(filter, "created_at")
	query := `SELECT ` + journeyColumns + ` FROM journeys` + clauses

	start := time.Now()
	r.logger.Database().Debug("Loading journeys from database")

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query journeys", "error", err.Error())
		return nil, fmt.Errorf("failed to query journeys: %w", err)
	}
	defer rows.Close()

	journeys := []*catalog.Journey{}
	for rows.Next() {
		journey, err := scanJourney(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journey: %w", err)
		}
		journeys = append(journeys, journey)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Loaded journeys from database", "count", len(journeys), "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return journeys, rows.Err()
}

func (r *JourneyRepository) Store(journey *catalog.Journey) error {
	if journey.CreatedAt.IsZero() {
		journey.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO journeys (id, title, description, duration, difficulty, category, activities, image_url, featured, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing journey insert", "id", journey.ID)

	_, err := r.db.Exec(query, journey.ID, journey.Title, journey.Description, journey.Duration,
		journey.Difficulty, journey.Category, jsonList(journey.Activities), journey.ImageURL,
		journey.Featured, journey.CreatedAt)
	if err != nil {
		r.logger.Database().Error("Journey insert failed", "error", err.Error(), "id", journey.ID)
		return fmt.Errorf("failed to insert journey: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Journey insert completed", "id", journey.ID, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *JourneyRepository) Update(journey *catalog.Journey) error {
	now := time.Now().UTC()
	journey.UpdatedAt = &now

	query := `UPDATE journeys SET title = ?, description = ?, duration = ?, difficulty = ?, category = ?,
              activities = ?, image_url = ?, featured = ?, updated_at = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing journey update", "id", journey.ID)

	_, err := r.db.Exec(query, journey.Title, journey.Description, journey.Duration, journey.Difficulty,
		journey.Category, jsonList(journey.Activities), journey.ImageURL, journey.Featured,
		journey.UpdatedAt, journey.ID)
	if err != nil {
		r.logger.Database().Error("Journey update failed", "error", err.Error(), "id", journey.ID)
		return fmt.Errorf("failed to update journey: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Journey update completed", "id", journey.ID, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *JourneyRepository) Delete(id string) error {
	start := time.Now()
	r.logger.Database().Debug("Executing journey delete", "id", id)

	// Itinerary days have no standalone meaning without their journey.
	if _, err := r.db.Exec(`DELETE FROM journey_days WHERE journey_id = ?`, id); err != nil {
		r.logger.Database().Error("Journey day cascade delete failed", "error", err.Error(), "journeyId", id)
		return fmt.Errorf("failed to delete journey days: %w", err)
	}

	query := `DELETE FROM journeys WHERE id = ?`
	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Journey delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete journey: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Journey delete completed", "id", id, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJourney(row rowScanner) (*catalog.Journey, error) {
	var journey catalog.Journey
	var activities string
	var imageURL sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(&journey.ID, &journey.Title, &journey.Description, &journey.Duration,
		&journey.Difficulty, &journey.Category, &activities, &imageURL, &journey.Featured,
		&journey.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	journey.Activities = parseList(activities)
	journey.ImageURL = strOrNil(imageURL)
	journey.UpdatedAt = timeOrNil(updatedAt)
	return &journey, nil
}
