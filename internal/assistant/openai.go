package assistant

import (
	"context"
	"strings"
	"sync"

	"github.com/fitnexus/fitnexus-backend/pkg/config"
	openai "github.com/sashabaranov/go-openai"
)

type openaiClient struct {
	api          *openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient wraps the OpenAI chat completion API as a session factory.
func NewOpenAIClient(cfg config.AssistantConfig) Client {
	return &openaiClient{
		api:          openai.NewClient(cfg.APIKey),
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,
	}
}

func (c *openaiClient) CreateSession(ctx context.Context) (Session, error) {
	return &openaiSession{
		api:   c.api,
		model: c.model,
		history: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleSystem,
			Content: c.systemPrompt,
		}},
	}, nil
}

// openaiSession keeps the full turn history and replays it on every request,
// which is how the completion API models a stateful chat.
type openaiSession struct {
	mu      sync.Mutex
	api     *openai.Client
	model   string
	history []openai.ChatCompletionMessage
}

func (s *openaiSession) Send(ctx context.Context, message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := s.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    s.history,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		// Drop the failed turn so a retry does not double-send it.
		s.history = s.history[:len(s.history)-1]
		return "", err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		s.history = s.history[:len(s.history)-1]
		return "", ErrEmptyReply
	}

	reply := resp.Choices[0].Message.Content
	s.history = append(s.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})
	return reply, nil
}
