package services

import (
	"context"
	"fmt"
	"log"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const questionModel = "gpt-4.1-mini"

// LLMService wraps the langchaingo OpenAI client behind the
// QuestionGenerator port.
type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the client. The API key comes from config; the
// server can't do anything useful without it, so a bad key setup is fatal.
func NewLLMService(apiKey string) *LLMService {
	if apiKey == "" {
		log.Fatal("CRITICAL ERROR: OPENAI_API_KEY is empty. Did you load the .env file?")
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(questionModel),
	)
	if err != nil {
		log.Fatal("Failed to create OpenAI client:", err)
	}

	return &LLMService{Client: llm}
}

// Complete sends the conversation as-is and returns the model's single text
// reply. No retries, no timeout beyond the underlying HTTP client's.
func (s *LLMService) Complete(ctx context.Context, conversation []ChatMessage, temperature float64) (string, error) {
	messages := make([]llms.MessageContent, 0, len(conversation))
	for _, m := range conversation {
		var role llms.ChatMessageType
		switch m.Role {
		case RoleSystem:
			role = llms.ChatMessageTypeSystem
		case RoleAssistant:
			role = llms.ChatMessageTypeAI
		default:
			role = llms.ChatMessageTypeHuman
		}
		messages = append(messages, llms.TextParts(role, m.Content))
	}

	resp, err := s.Client.GenerateContent(ctx, messages, llms.WithTemperature(temperature))
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion: no choices returned")
	}
	return resp.Choices[0].Content, nil
}
