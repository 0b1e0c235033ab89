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

// Blog posts live in the "packages" table, a name inherited from the
// original schema and kept for data compatibility.
const postColumns = `id, title, excerpt, content, category, author, author_bio, author_avatar, tags, read_time, published_date, views, image_url, featured, created_at, updated_at`

type PostRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewPostRepository(db *sql.DB, logger *logging.ChanneledLogger) *PostRepository {
	return &PostRepository{db: db, logger: logger}
}

func (r *PostRepository) FindByID(id string) (*catalog.Post, error) {
	query := `SELECT ` + postColumns + ` FROM packages WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading post from database", "id", id)

	post, err := scanPost(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan post", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return post, nil
}

func (r *PostRepository) FindAll(filter repositories.ListFilter) ([]*catalog.Post, error) {
	clauses, args := listClauses(filter, "published_date")
	query := `SELECT ` + postColumns + ` FROM packages` + clauses

	start := time.Now()
	r.logger.Database().Debug("Loading posts from database")

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query posts", "error", err.Error())
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []*catalog.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Loaded posts from database", "count", len(posts), "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Store(post *catalog.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO packages (id, title, excerpt, content, category, author, author_bio, author_avatar,
              tags, read_time, published_date, views, image_url, featured, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing post insert", "id", post.ID)

	_, err := r.db.Exec(query, post.ID, post.Title, post.Excerpt, post.Content, post.Category,
		post.Author, post.AuthorBio, post.AuthorAvatar, jsonList(post.Tags), post.ReadTime,
		post.PublishedDate, post.Views, post.ImageURL, post.Featured, post.CreatedAt)
	if err != nil {
		r.logger.Database().Error("Post insert failed", "error", err.Error(), "id", post.ID)
		return fmt.Errorf("failed to insert post: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Post insert completed", "id", post.ID, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *PostRepository) Update(post *catalog.Post) error {
	now := time.Now().UTC()
	post.UpdatedAt = &now

	query := `UPDATE packages SET title = ?, excerpt = ?, content = ?, category = ?, author = ?,
              author_bio = ?, author_avatar = ?, tags = ?, read_time = ?, published_date = ?,
              image_url = ?, featured = ?, updated_at = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing post update", "id", post.ID)

	_, err := r.db.Exec(query, post.Title, post.Excerpt, post.Content, post.Category, post.Author,
		post.AuthorBio, post.AuthorAvatar, jsonList(post.Tags), post.ReadTime, post.PublishedDate,
		post.ImageURL, post.Featured, post.UpdatedAt, post.ID)
	if err != nil {
		r.logger.Database().Error("Post update failed", "error", err.Error(), "id", post.ID)
		return fmt.Errorf("failed to update post: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Post update completed", "id", post.ID, "duration", duration)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration)
	}
	return nil
}

func (r *PostRepository) Delete(id string) error {
	query := `DELETE FROM packages WHERE id = ?`

	r.logger.Database().Debug("Executing post delete", "id", id)
	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Post delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// IncrementViews bumps the read counter atomically; it deliberately skips
// updated_at so a page view never looks like an edit.
func (r *PostRepository) IncrementViews(id string) error {
	query := `UPDATE packages SET views = views + 1 WHERE id = ?`

	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Database().Error("Post view increment failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to increment post views: %w", err)
	}
	return nil
}

func scanPost(row rowScanner) (*catalog.Post, error) {
	var post catalog.Post
	var authorBio, authorAvatar, readTime, imageURL sql.NullString
	var tags string
	var publishedDate, updatedAt sql.NullTime

	err := row.Scan(&post.ID, &post.Title, &post.Excerpt, &post.Content, &post.Category, &post.Author,
		&authorBio, &authorAvatar, &tags, &readTime, &publishedDate, &post.Views, &imageURL,
		&post.Featured, &post.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	post.AuthorBio = strOrNil(authorBio)
	post.AuthorAvatar = strOrNil(authorAvatar)
	post.ReadTime = strOrNil(readTime)
	post.Tags = parseList(tags)
	post.ImageURL = strOrNil(imageURL)
	post.PublishedDate = timeOrNil(publishedDate)
	post.UpdatedAt = timeOrNil(updatedAt)
	return &post, nil
}
