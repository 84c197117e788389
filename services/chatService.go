package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"vibeflow/config"
	"vibeflow/models"
)

const defaultProvider = "openai"

const assistantSystemPrompt = "You are a supportive wellness assistant for the VibeFlow app. " +
	"Be warm and practical, keep answers short, and never give medical diagnoses. " +
	"Suggest seeing a professional for anything serious."

// ChatRequest is the payload the chat endpoint accepts. Mood context
// is optional; when present it is attached to the outbound prompt.
type ChatRequest struct {
	Message     string          `json:"message" binding:"required"`
	CurrentMood models.MoodKind `json:"currentMood,omitempty"`
	MoodEmoji   string          `json:"moodEmoji,omitempty"`
	UserContext string          `json:"userContext,omitempty"`
	AIProvider  string          `json:"aiProvider,omitempty"`
}

// ChatService proxies the wellness-assistant conversation to an
// OpenAI-compatible provider. Providers are configured once at
// startup; an unknown aiProvider falls back to the default.
type ChatService struct {
	providers map[string]llms.Model
}

func NewChatService(cfg *config.Config) (*ChatService, error) {
	providers := make(map[string]llms.Model)

	if cfg.OpenAIKey != "" {
		llm, err := openai.New(
			openai.WithToken(cfg.OpenAIKey),
			openai.WithModel(cfg.OpenAIModel),
		)
		if err != nil {
			return nil, fmt.Errorf("init openai client: %w", err)
		}
		providers["openai"] = llm
	}

	if cfg.GroqKey != "" {
		llm, err := openai.New(
			openai.WithToken(cfg.GroqKey),
			openai.WithBaseURL(cfg.GroqBaseURL),
			openai.WithModel("llama-3.1-8b-instant"),
		)
		if err != nil {
			return nil, fmt.Errorf("init groq client: %w", err)
		}
		providers["groq"] = llm
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no AI provider configured")
	}
	return &ChatService{providers: providers}, nil
}

// Reply sends the message with mood context attached and returns the
// assistant's response text.
func (s *ChatService) Reply(ctx context.Context, req ChatRequest) (string, error) {
	llm := s.providers[strings.ToLower(req.AIProvider)]
	if llm == nil {
		llm = s.providers[defaultProvider]
	}
	if llm == nil {
		// Default provider absent; take whichever is configured.
		for _, l := range s.providers {
			llm = l
			break
		}
	}

	prompt := buildPrompt(req)
	response, err := llms.GenerateFromSinglePrompt(ctx, llm, prompt)
	if err != nil {
		return "", fmt.Errorf("generate chat response: %w", err)
	}
	return response, nil
}

func buildPrompt(req ChatRequest) string {
	var b strings.Builder
	b.WriteString(assistantSystemPrompt)
	b.WriteString("\n\n")
	if req.CurrentMood != "" {
		emoji := req.MoodEmoji
		if emoji == "" {
			emoji = req.CurrentMood.Emoji()
		}
		fmt.Fprintf(&b, "The user's current mood is %s %s.\n", req.CurrentMood, emoji)
	}
	if req.UserContext != "" {
		fmt.Fprintf(&b, "About the user: %s\n", req.UserContext)
	}
	b.WriteString("\nUser: ")
	b.WriteString(req.Message)
	return b.String()
}
