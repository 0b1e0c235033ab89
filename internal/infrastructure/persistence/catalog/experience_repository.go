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

const experienceColumns = `id, title, description, duration, group_size, price, category, highlights, image_url, featured, created_at, updated_at`

type ExperienceRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewExperienceRepository(db *sql.DB, logger *logging.ChanneledLogger) *ExperienceRepository {
	return &ExperienceRepository{db: db, logger: logger}
}

func (r *ExperienceRepository) FindByID(id string) (*catalog.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading experience from database", "id", id)

	experience, err := scanExperience(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan experience", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan experience: %w", err)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return experience, nil
}

func (r *ExperienceRepository) FindAll(filter repositories.ListFilter) ([]*catalog.Experience, error) {
	clauses, args := listClauses(filter, "created_at")
	query := `SELECT ` + experienceColumns + ` FROM experiences` + clauses

	start := time.Now()
	r.logger.Database().Debug("Loading experiences from database")

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query experiences", "error", err.Error())
		return nil, fmt.Errorf("failed to query experiences: %w", err)
	}
	defer rows.Close()

	experiences := []*catalog.Experience{}
	for rows.Next() {
		experience, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		experiences = append(experiences, experience)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Loaded experiences from database", "count", len(experiences), "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return experiences, rows.Err()
}

func (r *ExperienceRepository) Store(experience *catalog.Experience) error {
	if experience.CreatedAt.IsZero() {
		experience.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO experiences (id, title, description, duration, group_size, price, category, highlights, image_url, featured, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing experience insert", "id", experience.ID)

	_, err := r.db.Exec(query, experience.ID, experience.Title, experience.Description, experience.Duration,
		experience.GroupSize, experience.Price, experience.Category, jsonList(experience.Highlights),
		experience.ImageURL, experience.Featured, experience.CreatedAt)
	if err != nil {
		r.logger.Database().Error("Experience insert failed", "error", err.Error(), "id", experience.ID)
		return fmt.Errorf("failed to insert experience: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Experience insert completed", "id", experience.ID, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *ExperienceRepository) Update(experience *catalog.Experience) error {
	now := time.Now().UTC()
	experience.UpdatedAt = &now

	query := `UPDATE experiences SET title = ?, description = ?, duration = ?, group_size = ?, price = ?,
              category = ?, highlights = ?, image_url = ?, featured = ?, updated_at = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing experience update", "id", experience.ID)

	_, err := r.db.Exec(query, experience.Title, experience.Description, experience.Duration,
		experience.GroupSize, experience.Price, experience.Category, jsonList(experience.Highlights),
		experience.ImageURL, experience.Featured, experience.UpdatedAt, experience.ID)
	if err != nil {
		r.logger.Database().Error("Experience update failed", "error", err.Error(), "id", experience.ID)
		return fmt.Errorf("failed to update experience: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Experience update completed", "id", experience.ID, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *ExperienceRepository) Delete(id string) error {
	query := `DELETE FROM experiences WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing experience delete", "id", id)

	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Experience delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete experience: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Experience delete completed", "id", id, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func scanExperience(row rowScanner) (*catalog.Experience, error) {
	var experience catalog.Experience
	var highlights string
	var imageURL sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(&experience.ID, &experience.Title, &experience.Description, &experience.Duration,
		&experience.GroupSize, &experience.Price, &experience.Category, &highlights, &imageURL,
		&experience.Featured, &experience.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	experience.Highlights = parseList(highlights)
	experience.ImageURL = strOrNil(imageURL)
	experience.UpdatedAt = timeOrNil(updatedAt)
	return &experience, nil
}
