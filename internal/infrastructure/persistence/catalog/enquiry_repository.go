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

const enquiryColumns = `id, name, email, phone, subject, message, trip_interest, travel_dates, journey_id, journey_title, status, is_read, created_at, updated_at`

type EnquiryRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewEnquiryRepository(db *sql.DB, logger *logging.ChanneledLogger) *EnquiryRepository {
	return &EnquiryRepository{db: db, logger: logger}
}

func (r *EnquiryRepository) FindByID(id string) (*catalog.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries WHERE id = ?`

	r.logger.Database().Debug("Loading enquiry from database", "id", id)

	enquiry, err := scanEnquiry(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan enquiry", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan enquiry: %w", err)
	}
	return enquiry, nil
}

func (r *EnquiryRepository) FindAll(filter repositories.ListFilter) ([]*catalog.Enquiry, error) {
	clauses, args := listClauses(repositories.ListFilter{
		Status:    filter.Status,
		OrderBy:   filter.OrderBy,
		Ascending: filter.Ascending,
		Limit:     filter.Limit,
	}, "created_at")
	query := `SELECT ` + enquiryColumns + ` FROM enquiries` + clauses

	start := time.Now()
	r.logger.Database().Debug("Loading enquiries from database")

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query enquiries", "error", err.Error())
		return nil, fmt.Errorf("failed to query enquiries: %w", err)
	}
	defer rows.Close()

	enquiries := []*catalog.Enquiry{}
	for rows.Next() {
		enquiry, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enquiry: %w", err)
		}
		enquiries = append(enquiries, enquiry)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Loaded enquiries from database", "count", len(enquiries), "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return enquiries, rows.Err()
}

func (r *EnquiryRepository) Store(enquiry *catalog.Enquiry) error {
	if enquiry.CreatedAt.IsZero() {
		enquiry.CreatedAt = time.Now().UTC()
	}
	if enquiry.Status == "" {
		enquiry.Status = "new"
	}

	query := `INSERT INTO enquiries (id, name, email, phone, subject, message, trip_interest, travel_dates,
              journey_id, journey_title, status, is_read, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing enquiry insert", "id", enquiry.ID)

	_, err := r.db.Exec(query, enquiry.ID, enquiry.Name, enquiry.Email, enquiry.Phone, enquiry.Subject,
		enquiry.Message, enquiry.TripInterest, enquiry.TravelDates, enquiry.JourneyID,
		enquiry.JourneyTitle, enquiry.Status, enquiry.IsRead, enquiry.CreatedAt)
	if err != nil {
		r.logger.Database().Error("Enquiry insert failed", "error", err.Error(), "id", enquiry.ID)
		return fmt.Errorf("failed to insert enquiry: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Enquiry insert completed", "id", enquiry.ID, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *EnquiryRepository) Update(enquiry *catalog.Enquiry) error {
	now := time.Now().UTC()
	enquiry.UpdatedAt = &now

	query := `UPDATE enquiries SET status = ?, is_read = ?, updated_at = ? WHERE id = ?`

	r.logger.Database().Debug("Executing enquiry update", "id", enquiry.ID)

	_, err := r.db.Exec(query, enquiry.Status, enquiry.IsRead, enquiry.UpdatedAt, enquiry.ID)
	if err != nil {
		r.logger.Database().Error("Enquiry update failed", "error", err.Error(), "id", enquiry.ID)
		return fmt.Errorf("failed to update enquiry: %w", err)
	}
	return nil
}

func (r *EnquiryRepository) Delete(id string) error {
	query := `DELETE FROM enquiries WHERE id = ?`

	r.logger.Database().Debug("Executing enquiry delete", "id", id)
	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Enquiry delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete enquiry: %w", err)
	}
	return nil
}

func scanEnquiry(row rowScanner) (*catalog.Enquiry, error) {
	var enquiry catalog.Enquiry
	var phone, tripInterest, travelDates, journeyID, journeyTitle sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(&enquiry.ID, &enquiry.Name, &enquiry.Email, &phone, &enquiry.Subject,
		&enquiry.Message, &tripInterest, &travelDates, &journeyID, &journeyTitle,
		&enquiry.Status, &enquiry.IsRead, &enquiry.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	enquiry.Phone = strOrNil(phone)
	enquiry.TripInterest = strOrNil(tripInterest)
	enquiry.TravelDates = strOrNil(travelDates)
	enquiry.JourneyID = strOrNil(journeyID)
	enquiry.JourneyTitle = strOrNil(journeyTitle)
	enquiry.UpdatedAt = timeOrNil(updatedAt)
	return &enquiry, nil
}
