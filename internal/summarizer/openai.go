package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const DefaultModel = "gpt-4o"

// OpenAISummarizer calls OpenAI's Chat Completions API to produce summaries.
type OpenAISummarizer struct {
	client openai.Client
	model  string
	log    *slog.Logger
}

// NewOpenAISummarizer builds a new summarizer instance. An empty baseURL keeps
// the SDK default; SDK retries are disabled.
func NewOpenAISummarizer(
	apiKey string,
	baseURL string,
	model string,
	log *slog.Logger,
) *OpenAISummarizer {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}

	return &OpenAISummarizer{
		client: openai.NewClient(opts...),
		model:  model,
		log:    log,
	}
}

// Summarize asks the model to summarize content. Failures are logged and
// returned as a FailurePrefix string.
func (s *OpenAISummarizer) Summarize(ctx context.Context, content string) string {
	summary, err := s.complete(ctx, content+UserPromptSuffix)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to summarize content",
			"error", err,
			"model", s.model,
			"fallback", true,
			"contentLen", len(content))

		return failureSummary(err)
	}

	return summary
}

func (s *OpenAISummarizer) complete(ctx context.Context, userPrompt string) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(Temperature),
		MaxTokens:   openai.Int(MaxOutputTokens),
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("response has no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
