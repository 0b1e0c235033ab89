package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/ai"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
)

// ContentGenerator produces draft content for a titled piece of catalog
// content. Satisfied by ai.ContentService.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req ai.ContentRequest) (*ai.ContentResponse, error)
}

// DraftRequest asks for generated draft fields for one content type.
// RequestToken makes retries safe to deduplicate client-side; a blank
// token gets one assigned.
type DraftRequest struct {
	Title        string            `json:"title"`
	ContentType  string            `json:"contentType"`
	Context      map[string]string `json:"context,omitempty"`
	Existing     map[string]any    `json:"existing,omitempty"`
	Overwrite    bool              `json:"overwrite,omitempty"`
	RequestToken string            `json:"requestToken,omitempty"`
}

type DraftResponse struct {
	Content      any      `json:"content"`
	Suggestions  []string `json:"suggestions"`
	RequestToken string   `json:"requestToken"`
}

// DraftService sits between the admin UI and the content generator. It
// merges generated object fields into whatever the editor already typed:
// only blank fields are filled unless Overwrite is set. Array-shaped
// content (itineraries, FAQs) replaces wholesale; partial merges of
// ordered lists produce nonsense.
type DraftService struct {
	generator ContentGenerator
	logger    *logging.ChanneledLogger
}

func NewDraftService(generator ContentGenerator, logger *logging.ChanneledLogger) *DraftService {
	return &DraftService{generator: generator, logger: logger}
}

func (s *DraftService) Draft(ctx context.Context, req DraftRequest) (*DraftResponse, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("draft title cannot be empty")
	}
	contentType := ai.ContentType(req.ContentType)
	if !contentType.Valid() {
		return nil, fmt.Errorf("unknown content type: %s", req.ContentType)
	}
	if req.RequestToken == "" {
		req.RequestToken = uuid.New().String()
	}

	resp, err := s.generator.GenerateContent(ctx, ai.ContentRequest{
		Title:   req.Title,
		Type:    contentType,
		Context: req.Context,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to draft %s content: %w", req.ContentType, err)
	}

	shape, err := contentType.ShapeOf()
	if err != nil {
		return nil, err
	}

	content := resp.Content
	if shape == ai.ShapeObject {
		if generated, ok := resp.Content.(map[string]any); ok {
			content = mergeDraft(req.Existing, generated, req.Overwrite)
		}
	}

	s.logger.AI().Info("Draft content prepared", "contentType", req.ContentType, "requestToken", req.RequestToken, "overwrite", req.Overwrite)

	return &DraftResponse{
		Content:      content,
		Suggestions:  resp.Suggestions,
		RequestToken: req.RequestToken,
	}, nil
}

// mergeDraft folds generated fields into existing ones. Existing values win
// unless they are empty or overwrite is set. Running the same merge twice
// yields the same result.
func mergeDraft(existing, generated map[string]any, overwrite bool) map[string]any {
	merged := make(map[string]any, len(existing)+len(generated))
	for key, value := range existing {
		merged[key] = value
	}
	for key, value := range generated {
		if overwrite || isEmptyValue(merged[key]) {
			merged[key] = value
		}
	}
	return merged
}

func isEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []any:
		return len(value) == 0
	case map[string]any:
		return len(value) == 0
	default:
		return false
	}
}
