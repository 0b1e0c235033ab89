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

const resortActivityColumns = `id, title, description, full_description, icon, image_url, created_at, updated_at`

type ResortActivityRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewResortActivityRepository(db *sql.DB, logger *logging.ChanneledLogger) *ResortActivityRepository {
	return &ResortActivityRepository{db: db, logger: logger}
}

func (r *ResortActivityRepository) FindByID(id string) (*catalog.ResortActivity, error) {
	query := `SELECT ` + resortActivityColumns + ` FROM resort_activities WHERE id = ?`

	r.logger.Database().Debug("Loading resort activity from database", "id", id)

	activity, err := scanResortActivity(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan resort activity", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan resort activity: %w", err)
	}
	return activity, nil
}

func (r *ResortActivityRepository) FindAll(filter repositories.ListFilter) ([]*catalog.ResortActivity, error) {
	clauses, args := listClauses(repositories.ListFilter{
		OrderBy:   filter.OrderBy,
		Ascending: filter.Ascending,
		Limit:     filter.Limit,
	}, "created_at")
	query := `SELECT ` + resortActivityColumns + ` FROM resort_activities` + clauses

	start := time.Now()
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query resort activities", "error", err.Error())
		return nil, fmt.Errorf("failed to query resort activities: %w", err)
	}
	defer rows.Close()

	activities := []*catalog.ResortActivity{}
	for rows.Next() {
		activity, err := scanResortActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resort activity: %w", err)
		}
		activities = append(activities, activity)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return activities, rows.Err()
}

func (r *ResortActivityRepository) Store(activity *catalog.ResortActivity) error {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO resort_activities (id, title, description, full_description, icon, image_url, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`

	r.logger.Database().Debug("Executing resort activity insert", "id", activity.ID)

	_, err := r.db.Exec(query, activity.ID, activity.Title, activity.Description,
		activity.FullDescription, activity.Icon, activity.ImageURL, activity.CreatedAt)
	if err != nil {
		r.logger.Database().Error("Resort activity insert failed", "error", err.Error(), "id", activity.ID)
		return fmt.Errorf("failed to insert resort activity: %w", err)
	}
	return nil
}

func (r *ResortActivityRepository) Update(activity *catalog.ResortActivity) error {
	now := time.Now().UTC()
	activity.UpdatedAt = &now

	query := `UPDATE resort_activities SET title = ?, description = ?, full_description = ?, icon = ?,
              image_url = ?, updated_at = ? WHERE id = ?`

	r.logger.Database().Debug("Executing resort activity update", "id", activity.ID)

	_, err := r.db.Exec(query, activity.Title, activity.Description, activity.FullDescription,
		activity.Icon, activity.ImageURL, activity.UpdatedAt, activity.ID)
	if err != nil {
		r.logger.Database().Error("Resort activity update failed", "error", err.Error(), "id", activity.ID)
		return fmt.Errorf("failed to update resort activity: %w", err)
	}
	return nil
}

func (r *ResortActivityRepository) Delete(id string) error {
	query := `DELETE FROM resort_activities WHERE id = ?`

	r.logger.Database().Debug("Executing resort activity delete", "id", id)
	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Resort activity delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete resort activity: %w", err)
	}
	return nil
}

func scanResortActivity(row rowScanner) (*catalog.ResortActivity, error) {
	var activity catalog.ResortActivity
	var imageURL sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(&activity.ID, &activity.Title, &activity.Description, &activity.FullDescription,
		&activity.Icon, &imageURL, &activity.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	activity.ImageURL = strOrNil(imageURL)
	activity.UpdatedAt = timeOrNil(updatedAt)
	return &activity, nil
}

const resortPackageColumns = `id, name, description, duration, price, original_price, badge, includes, features, image_url, created_at, updated_at`

type ResortPackageRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewResortPackageRepository(db *sql.DB, logger *logging.ChanneledLogger) *ResortPackageRepository {
	return &ResortPackageRepository{db: db, logger: logger}
}

func (r *ResortPackageRepository) FindByID(id string) (*catalog.ResortPackage, error) {
	query := `SELECT ` + resortPackageColumns + ` FROM resort_packages WHERE id = ?`

	r.logger.Database().Debug("Loading resort package from database", "id", id)

	pkg, err := scanResortPackage(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan resort package", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan resort package: %w", err)
	}
	return pkg, nil
}

func (r *ResortPackageRepository) FindAll(filter repositories.ListFilter) ([]*catalog.ResortPackage, error) {
	clauses, args := listClauses(repositories.ListFilter{
		OrderBy:   filter.OrderBy,
		Ascending: filter.Ascending,
		Limit:     filter.Limit,
	}, "created_at")
	query := `SELECT ` + resortPackageColumns + ` FROM resort_packages` + clauses

	start := time.Now()
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query resort packages", "error", err.Error())
		return nil, fmt.Errorf("failed to query resort packages: %w", err)
	}
	defer rows.Close()

	packages := []*catalog.ResortPackage{}
	for rows.Next() {
		pkg, err := scanResortPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resort package: %w", err)
		}
		packages = append(packages, pkg)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return packages, rows.Err()
}

func (r *ResortPackageRepository) Store(pkg *catalog.ResortPackage) error {
	if pkg.CreatedAt.IsZero() {
		pkg.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO resort_packages (id, name, description, duration, price, original_price, badge, includes, features, image_url, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	r.logger.Database().Debug("Executing resort package insert", "id", pkg.ID)

	_, err := r.db.Exec(query, pkg.ID, pkg.Name, pkg.Description, pkg.Duration, pkg.Price,
		pkg.OriginalPrice, pkg.Badge, jsonList(pkg.Includes), jsonList(pkg.Features),
		pkg.ImageURL, pkg.CreatedAt)
	if err != nil {
		r.logger.Database().Error("Resort package insert failed", "error", err.Error(), "id", pkg.ID)
		return fmt.Errorf("failed to insert resort package: %w", err)
	}
	return nil
}

func (r *ResortPackageRepository) Update(pkg *catalog.ResortPackage) error {
	now := time.Now().UTC()
	pkg.UpdatedAt = &now

	query := `UPDATE resort_packages SET name = ?, description = ?, duration = ?, price = ?,
              original_price = ?, badge = ?, includes = ?, features = ?, image_url = ?, updated_at = ?
              WHERE id = ?`

	r.logger.Database().Debug("Executing resort package update", "id", pkg.ID)

	_, err := r.db.Exec(query, pkg.Name, pkg.Description, pkg.Duration, pkg.Price, pkg.OriginalPrice,
		pkg.Badge, jsonList(pkg.Includes), jsonList(pkg.Features), pkg.ImageURL, pkg.UpdatedAt, pkg.ID)
	if err != nil {
		r.logger.Database().Error("Resort package update failed", "error", err.Error(), "id", pkg.ID)
		return fmt.Errorf("failed to update resort package: %w", err)
	}
	return nil
}

func (r *ResortPackageRepository) Delete(id string) error {
	query := `DELETE FROM resort_packages WHERE id = ?`

	r.logger.Database().Debug("Executing resort package delete", "id", id)
	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Resort package delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete resort package: %w", err)
	}
	return nil
}

func scanResortPackage(row rowScanner) (*catalog.ResortPackage, error) {
	var pkg catalog.ResortPackage
	var includes, features string
	var imageURL sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(&pkg.ID, &pkg.Name, &pkg.Description, &pkg.Duration, &pkg.Price, &pkg.OriginalPrice,
		&pkg.Badge, &includes, &features, &imageURL, &pkg.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	pkg.Includes = parseList(includes)
	pkg.Features = parseList(features)
	pkg.ImageURL = strOrNil(imageURL)
	pkg.UpdatedAt = timeOrNil(updatedAt)
	return &pkg, nil
}
