package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/ShantiHimalaya/shanti-go/pkg/config"
)

const destinationColumns = `id, name, slug, description, duration, difficulty, best_time, altitude, category,
    highlights, overview, places_to_visit, things_to_do, how_to_reach, best_time_details, where_to_stay,
    itinerary, travel_tips, faqs, image_url, featured, created_at, updated_at`

type DestinationRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewDestinationRepository(db *sql.DB, logger *logging.ChanneledLogger) *DestinationRepository {
	return &DestinationRepository{db: db, logger: logger}
}

func (r *DestinationRepository) FindByID(id string) (*catalog.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = ?`
	return r.queryOne(query, id)
}

func (r *DestinationRepository) FindBySlug(slug string) (*catalog.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE slug = ?`
	return r.queryOne(query, slug)
}

func (r *DestinationRepository) queryOne(query string, arg any) (*catalog.Destination, error) {
	start := time.Now()
	r.logger.Database().Debug("Loading destination from database", "key", arg)

	destination, err := scanDestination(r.db.QueryRow(query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan destination", "error", err.Error(), "key", arg)
		return nil, fmt.Errorf("failed to scan destination: %w", err)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return destination, nil
}

func (r *DestinationRepository) FindAll(filter repositories.ListFilter) ([]*catalog.Destination, error) {
	clauses, args := listClauses(filter, "created_at")
	query := `SELECT ` + destinationColumns + ` FROM destinations` + clauses

	start := time.Now()
	r.logger.Database().Debug("Loading destinations from database")

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query destinations", "error", err.Error())
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer rows.Close()

	destinations := []*catalog.Destination{}
	for rows.Next() {
		destination, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, destination)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Loaded destinations from database", "count", len(destinations), "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return destinations, rows.Err()
}

func (r *DestinationRepository) Store(destination *catalog.Destination) error {
	if destination.CreatedAt.IsZero() {
		destination.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO destinations (id, name, slug, description, duration, difficulty, best_time, altitude,
              category, highlights, overview, places_to_visit, things_to_do, how_to_reach, best_time_details,
              where_to_stay, itinerary, travel_tips, faqs, image_url, featured, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing destination insert", "id", destination.ID)

	_, err := r.db.Exec(query, destination.ID, destination.Name, destination.Slug, destination.Description,
		destination.Duration, destination.Difficulty, destination.BestTime, destination.Altitude,
		destination.Category, jsonList(destination.Highlights), destination.Overview,
		jsonValue(destination.PlacesToVisit), jsonValue(destination.ThingsToDo), jsonValue(destination.HowToReach),
		jsonValue(destination.BestTimeDetails), jsonValue(destination.WhereToStay), jsonValue(destination.Itinerary),
		jsonValue(destination.TravelTips), jsonValue(destination.FAQs), destination.ImageURL,
		destination.Featured, destination.CreatedAt)
	if err != nil {
		r.logger.Database().Error("Destination insert failed", "error", err.Error(), "id", destination.ID)
		return fmt.Errorf("failed to insert destination: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Destination insert completed", "id", destination.ID, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *DestinationRepository) Update(destination *catalog.Destination) error {
	now := time.Now().UTC()
	destination.UpdatedAt = &now

	query := `UPDATE destinations SET name = ?, slug = ?, description = ?, duration = ?, difficulty = ?,
              best_time = ?, altitude = ?, category = ?, highlights = ?, overview = ?, places_to_visit = ?,
              things_to_do = ?, how_to_reach = ?, best_time_details = ?, where_to_stay = ?, itinerary = ?,
              travel_tips = ?, faqs = ?, image_url = ?, featured = ?, updated_at = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing destination update", "id", destination.ID)

	_, err := r.db.Exec(query, destination.Name, destination.Slug, destination.Description,
		destination.Duration, destination.Difficulty, destination.BestTime, destination.Altitude,
		destination.Category, jsonList(destination.Highlights), destination.Overview,
		jsonValue(destination.PlacesToVisit), jsonValue(destination.ThingsToDo), jsonValue(destination.HowToReach),
		jsonValue(destination.BestTimeDetails), jsonValue(destination.WhereToStay), jsonValue(destination.Itinerary),
		jsonValue(destination.TravelTips), jsonValue(destination.FAQs), destination.ImageURL,
		destination.Featured, destination.UpdatedAt, destination.ID)
	if err != nil {
		r.logger.Database().Error("Destination update failed", "error", err.Error(), "id", destination.ID)
		return fmt.Errorf("failed to update destination: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Destination update completed", "id", destination.ID, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *DestinationRepository) Delete(id string) error {
	query := `DELETE FROM destinations WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing destination delete", "id", id)

	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Destination delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete destination: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Destination delete completed", "id", id, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func scanDestination(row rowScanner) (*catalog.Destination, error) {
	var d catalog.Destination
	var slug, altitude, overview, imageURL sql.NullString
	var highlights string
	var placesToVisit, thingsToDo, howToReach, bestTimeDetails, whereToStay sql.NullString
	var itinerary, travelTips, faqs sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(&d.ID, &d.Name, &slug, &d.Description, &d.Duration, &d.Difficulty, &d.BestTime,
		&altitude, &d.Category, &highlights, &overview, &placesToVisit, &thingsToDo, &howToReach,
		&bestTimeDetails, &whereToStay, &itinerary, &travelTips, &faqs, &imageURL, &d.Featured,
		&d.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	d.Slug = strOrNil(slug)
	d.Altitude = strOrNil(altitude)
	d.Overview = strOrNil(overview)
	d.ImageURL = strOrNil(imageURL)
	d.Highlights = parseList(highlights)
	d.UpdatedAt = timeOrNil(updatedAt)

	// Structured sections tolerate malformed stored JSON; a bad column
	// never blocks the rest of the record from loading.
	parseJSON := func(ns sql.NullString, target any) {
		if ns.Valid && ns.String != "" {
			_ = json.Unmarshal([]byte(ns.String), target)
		}
	}
	parseJSON(placesToVisit, &d.PlacesToVisit)
	parseJSON(thingsToDo, &d.ThingsToDo)
	parseJSON(howToReach, &d.HowToReach)
	parseJSON(bestTimeDetails, &d.BestTimeDetails)
	parseJSON(whereToStay, &d.WhereToStay)
	parseJSON(itinerary, &d.Itinerary)
	parseJSON(travelTips, &d.TravelTips)
	parseJSON(faqs, &d.FAQs)

	return &d, nil
}
