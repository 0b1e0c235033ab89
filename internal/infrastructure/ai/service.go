package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
)

// FallbackSuggestion is surfaced to the editor whenever generated content
// was replaced by the canned fallback.
const FallbackSuggestion = "AI generation failed, using fallback content"

var (
	ErrBlankTitle         = errors.New("title is required")
	ErrUnknownContentType = errors.New("unknown content type")
)

// ContentRequest asks for one draft payload.
type ContentRequest struct {
	Title   string            `json:"title"`
	Type    ContentType       `json:"contentType"`
	Context map[string]string `json:"context,omitempty"`
}

// ContentResponse carries the generated (or fallback) payload. Content is a
// JSON object for most types and a JSON array for itinerary and faq.
type ContentResponse struct {
	Content     any      `json:"content"`
	Suggestions []string `json:"suggestions"`
}

// Config holds the generation client settings.
type Config struct {
	APIKey     string
	Model      string
	MaxTokens  int64
	Timeout    time.Duration
	BaseURL    string       // Optional (tests)
	HTTPClient *http.Client // Optional (tests)
}

// ContentService drafts catalog content through a chat completion model.
type ContentService struct {
	client    openai.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	logger    *logging.ChanneledLogger
}

func NewContentService(cfg Config, logger *logging.ChanneledLogger) *ContentService {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(2),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &ContentService{
		client:    openai.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		logger:    logger,
	}
}

// GenerateContent produces a draft payload for the request. Validation
// problems (blank title, unknown type) return an error before any network
// call; generation and parse failures never do — they degrade to the
// type's fallback payload with an advisory suggestion.
func (s *ContentService) GenerateContent(ctx context.Context, req ContentRequest) (*ContentResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrBlankTitle
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContentType, req.Type)
	}

	prompt, err := BuildPrompt(req.Type, title, req.Context)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(s.model),
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(s.maxTokens),
	})
	if err != nil {
		s.logger.AI().Error("Chat completion failed, using fallback",
			"error", err.Error(), "contentType", string(req.Type), "duration", time.Since(start))
		return s.fallback(req.Type), nil
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		s.logger.AI().Warn("Chat completion returned no content, using fallback",
			"contentType", string(req.Type))
		return s.fallback(req.Type), nil
	}

	parsed, err := parseModelJSON(resp.Choices[0].Message.Content)
	if err != nil {
		s.logger.AI().Warn("Failed to parse model output, using fallback",
			"error", err.Error(), "contentType", string(req.Type))
		return s.fallback(req.Type), nil
	}

	s.logger.AI().Info("Draft content generated",
		"contentType", string(req.Type), "duration", time.Since(start))
	return &ContentResponse{Content: parsed, Suggestions: []string{}}, nil
}

func (s *ContentService) fallback(contentType ContentType) *ContentResponse {
	return &ContentResponse{
		Content:     contentType.Fallback(),
		Suggestions: []string{FallbackSuggestion},
	}
}
