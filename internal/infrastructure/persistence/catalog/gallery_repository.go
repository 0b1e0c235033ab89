package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
)

type GalleryRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewGalleryRepository(db *sql.DB, logger *logging.ChanneledLogger) *GalleryRepository {
	return &GalleryRepository{db: db, logger: logger}
}

func (r *GalleryRepository) FindByID(id string) (*catalog.GalleryImage, error) {
	query := `SELECT id, title, description, image_url, display_order, created_at, updated_at
              FROM resort_gallery WHERE id = ?`

	r.logger.Database().Debug("Loading gallery image from database", "id", id)

	image, err := scanGalleryImage(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan gallery image", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan gallery image: %w", err)
	}
	return image, nil
}

func (r *GalleryRepository) FindAll() ([]*catalog.GalleryImage, error) {
	query := `SELECT id, title, description, image_url, display_order, created_at, updated_at
              FROM resort_gallery ORDER BY display_order ASC, created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query gallery images", "error", err.Error())
		return nil, fmt.Errorf("failed to query gallery images: %w", err)
	}
	defer rows.Close()

	images := []*catalog.GalleryImage{}
	for rows.Next() {
		image, err := scanGalleryImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery image: %w", err)
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

func (r *GalleryRepository) Store(image *catalog.GalleryImage) error {
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO resort_gallery (id, title, description, image_url, display_order, created_at)
              VALUES (?, ?, ?, ?, ?, ?)`

	r.logger.Database().Debug("Executing gallery image insert", "id", image.ID)

	_, err := r.db.Exec(query, image.ID, image.Title, image.Description, image.ImageURL,
		image.DisplayOrder, image.CreatedAt)
	if err != nil {
		r.logger.Database().Error("Gallery image insert failed", "error", err.Error(), "id", image.ID)
		return fmt.Errorf("failed to insert gallery image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) Update(image *catalog.GalleryImage) error {
	now := time.Now().UTC()
	image.UpdatedAt = &now

	query := `UPDATE resort_gallery SET title = ?, description = ?, image_url = ?, display_order = ?,
              updated_at = ? WHERE id = ?`

	r.logger.Database().Debug("Executing gallery image update", "id", image.ID)

	_, err := r.db.Exec(query, image.Title, image.Description, image.ImageURL, image.DisplayOrder,
		image.UpdatedAt, image.ID)
	if err != nil {
		r.logger.Database().Error("Gallery image update failed", "error", err.Error(), "id", image.ID)
		return fmt.Errorf("failed to update gallery image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) Delete(id string) error {
	query := `DELETE FROM resort_gallery WHERE id = ?`

	r.logger.Database().Debug("Executing gallery image delete", "id", id)
	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Gallery image delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	return nil
}

func scanGalleryImage(row rowScanner) (*catalog.GalleryImage, error) {
	var image catalog.GalleryImage
	var title, description sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(&image.ID, &title, &description, &image.ImageURL, &image.DisplayOrder,
		&image.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	image.Title = strOrNil(title)
	image.Description = strOrNil(description)
	image.UpdatedAt = timeOrNil(updatedAt)
	return &image, nil
}
