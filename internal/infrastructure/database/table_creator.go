// Package database provides schema instantiation for the catalog store
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
)

// TableCreator handles the creation of the catalog database schema.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

// CreateSchema executes all necessary queries to build the catalog tables and indexes.
func (tc *TableCreator) CreateSchema(db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

// SeedInitialContent adds the default rows required for a fresh install to function.
func (tc *TableCreator) SeedInitialContent(db *sql.DB) error {
	// Idempotently create the default journey categories.
	for _, name := range []string{"Trekking", "Wildlife", "Culture", "Adventure", "Pilgrimage", "Nature"} {
		var exists bool
		err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM categories WHERE name = ?)", name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check for category %s: %w", name, err)
		}
		if !exists {
			now := time.Now().UTC()
			if _, err := db.Exec(`INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`,
				security.GenerateULID(), name, now); err != nil {
				return fmt.Errorf("failed to insert category %s: %w", name, err)
			}
		}
	}

	// Idempotently create the default dining schedule.
	defaults := []struct {
		mealType, time, description string
	}{
		{"breakfast", "7:00 AM - 10:00 AM", "Start your day with a hearty Himalayan breakfast"},
		{"lunch", "12:30 PM - 3:00 PM", "Freshly prepared local and continental dishes"},
		{"dinner", "7:00 PM - 10:00 PM", "Evening dining with seasonal specialities"},
	}
	for _, d := range defaults {
		var exists bool
		err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM dining_schedule WHERE meal_type = ?)", d.mealType).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check for dining schedule %s: %w", d.mealType, err)
		}
		if !exists {
			now := time.Now().UTC()
			if _, err := db.Exec(`INSERT INTO dining_schedule (id, meal_type, time, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
				security.GenerateULID(), d.mealType, d.time, d.description, now, now); err != nil {
				return fmt.Errorf("failed to insert dining schedule %s: %w", d.mealType, err)
			}
		}
	}

	return nil
}

// Array-valued columns (activities, highlights, tags, includes, features,
// meal lists) are stored as JSON text.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS categories (id TEXT PRIMARY KEY, name TEXT NOT NULL UNIQUE, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS journeys (id TEXT PRIMARY KEY, title TEXT NOT NULL, description TEXT NOT NULL, duration TEXT NOT NULL, difficulty TEXT NOT NULL, category TEXT NOT NULL, activities TEXT NOT NULL DEFAULT '[]', image_url TEXT, featured BOOLEAN DEFAULT 0, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS journey_days (id TEXT PRIMARY KEY, journey_id TEXT NOT NULL REFERENCES journeys(id), day_number INTEGER NOT NULL, title TEXT, description TEXT, image_url TEXT, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP, UNIQUE(journey_id, day_number))`,
	`CREATE TABLE IF NOT EXISTS destinations (id TEXT PRIMARY KEY, name TEXT NOT NULL, slug TEXT UNIQUE, description TEXT NOT NULL, duration TEXT NOT NULL, difficulty TEXT NOT NULL, best_time TEXT NOT NULL, altitude TEXT, category TEXT NOT NULL, highlights TEXT NOT NULL DEFAULT '[]', overview TEXT, places_to_visit TEXT, things_to_do TEXT, how_to_reach TEXT, best_time_details TEXT, where_to_stay TEXT, itinerary TEXT, travel_tips TEXT, faqs TEXT, image_url TEXT, featured BOOLEAN DEFAULT 0, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS experiences (id TEXT PRIMARY KEY, title TEXT NOT NULL, description TEXT NOT NULL, duration TEXT NOT NULL, group_size TEXT NOT NULL, price TEXT NOT NULL, category TEXT NOT NULL, highlights TEXT NOT NULL DEFAULT '[]', image_url TEXT, featured BOOLEAN DEFAULT 0, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS meal_items (id TEXT PRIMARY KEY, name TEXT NOT NULL, description TEXT NOT NULL, price TEXT NOT NULL, category TEXT NOT NULL, spice_level TEXT NOT NULL DEFAULT 'medium', is_vegetarian BOOLEAN DEFAULT 1, is_breakfast BOOLEAN DEFAULT 0, is_lunch BOOLEAN DEFAULT 0, is_dinner BOOLEAN DEFAULT 0, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS dining_schedule (id TEXT PRIMARY KEY, meal_type TEXT NOT NULL, time TEXT NOT NULL, description TEXT NOT NULL, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS resort_activities (id TEXT PRIMARY KEY, title TEXT NOT NULL, description TEXT NOT NULL, full_description TEXT NOT NULL, icon TEXT NOT NULL DEFAULT 'Mountain', image_url TEXT, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS resort_packages (id TEXT PRIMARY KEY, name TEXT NOT NULL, description TEXT NOT NULL, duration TEXT NOT NULL, price TEXT NOT NULL, original_price TEXT NOT NULL, badge TEXT NOT NULL, includes TEXT NOT NULL DEFAULT '[]', features TEXT NOT NULL DEFAULT '[]', image_url TEXT, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS packages (id TEXT PRIMARY KEY, title TEXT NOT NULL, excerpt TEXT NOT NULL, content TEXT NOT NULL, category TEXT NOT NULL, author TEXT NOT NULL, author_bio TEXT, author_avatar TEXT, tags TEXT NOT NULL DEFAULT '[]', read_time TEXT, published_date TIMESTAMP, views INTEGER DEFAULT 0, image_url TEXT, featured BOOLEAN DEFAULT 0, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS resort_gallery (id TEXT PRIMARY KEY, title TEXT, description TEXT, image_url TEXT NOT NULL, display_order INTEGER DEFAULT 0, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS enquiries (id TEXT PRIMARY KEY, name TEXT NOT NULL, email TEXT NOT NULL, phone TEXT, subject TEXT NOT NULL, message TEXT NOT NULL, trip_interest TEXT, travel_dates TEXT, journey_id TEXT REFERENCES journeys(id), journey_title TEXT, status TEXT NOT NULL DEFAULT 'new', is_read BOOLEAN DEFAULT 0, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, updated_at TIMESTAMP)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_journeys_category ON journeys(category)`,
	`CREATE INDEX IF NOT EXISTS idx_journeys_featured ON journeys(featured)`,
	`CREATE INDEX IF NOT EXISTS idx_journey_days_journey_id ON journey_days(journey_id)`,
	`CREATE INDEX IF NOT EXISTS idx_destinations_slug ON destinations(slug)`,
	`CREATE INDEX IF NOT EXISTS idx_destinations_category ON destinations(category)`,
	`CREATE INDEX IF NOT EXISTS idx_experiences_category ON experiences(category)`,
	`CREATE INDEX IF NOT EXISTS idx_meal_items_category ON meal_items(category)`,
	`CREATE INDEX IF NOT EXISTS idx_packages_category ON packages(category)`,
	`CREATE INDEX IF NOT EXISTS idx_resort_gallery_order ON resort_gallery(display_order)`,
	`CREATE INDEX IF NOT EXISTS idx_enquiries_status ON enquiries(status)`,
	`CREATE INDEX IF NOT EXISTS idx_enquiries_journey_id ON enquiries(journey_id)`,
}
