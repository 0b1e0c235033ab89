package services

import (
	"fmt"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
)

// PostService orchestrates blog post operations.
type PostService struct {
	postRepo repositories.PostRepository
	bus      messaging.ChangePublisher
}

func NewPostService(postRepo repositories.PostRepository, bus messaging.ChangePublisher) *PostService {
	return &PostService{postRepo: postRepo, bus: bus}
}

func (s *PostService) GetAll(filter repositories.ListFilter) ([]*catalog.Post, error) {
	posts, err := s.postRepo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	return posts, nil
}

// GetByID loads one post and counts the read. View bumps are best-effort;
// a failed increment never hides the post.
func (s *PostService) GetByID(id string, countView bool) (*catalog.Post, error) {
	if id == "" {
		return nil, fmt.Errorf("post ID cannot be empty")
	}
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}
	if post != nil && countView {
		if err := s.postRepo.IncrementViews(id); err == nil {
			post.Views++
		}
	}
	return post, nil
}

func (s *PostService) Create(post *catalog.Post) error {
	if post == nil {
		return fmt.Errorf("post cannot be nil")
	}
	if post.Title == "" {
		return fmt.Errorf("post title cannot be empty")
	}
	if post.Content == "" {
		return fmt.Errorf("post content cannot be empty")
	}
	if post.Author == "" {
		return fmt.Errorf("post author cannot be empty")
	}
	if post.ID == "" {
		post.ID = security.GenerateULID()
	}
	if post.PublishedDate == nil {
		now := time.Now().UTC()
		post.PublishedDate = &now
	}

	if err := s.postRepo.Store(post); err != nil {
		return fmt.Errorf("failed to create post %s: %w", post.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "packages", Op: messaging.OpInsert, RowID: post.ID})
	return nil
}

func (s *PostService) Update(post *catalog.Post) error {
	if post == nil {
		return fmt.Errorf("post cannot be nil")
	}
	if post.ID == "" {
		return fmt.Errorf("post ID cannot be empty")
	}
	if post.Title == "" {
		return fmt.Errorf("post title cannot be empty")
	}

	if err := s.postRepo.Update(post); err != nil {
		return fmt.Errorf("failed to update post %s: %w", post.ID, err)
	}

	s.bus.Publish(messaging.Change{Table: "packages", Op: messaging.OpUpdate, RowID: post.ID})
	return nil
}

func (s *PostService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("post ID cannot be empty")
	}

	if err := s.postRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "packages", Op: messaging.OpDelete, RowID: id})
	return nil
}
