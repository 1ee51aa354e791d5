package services

import "context"

// Conversation roles, matching the chat-completions wire format.
const (
	RoleSystem    = "system"
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// ChatMessage is one role-tagged turn in a conversation sent to the language
// model.
type ChatMessage struct {
	Role    string
	Content string
}

// QuestionGenerator is the language-generation gateway. One blocking call,
// no retries; the returned text is the next interview question.
type QuestionGenerator interface {
	Complete(ctx context.Context, conversation []ChatMessage, temperature float64) (string, error)
}

// Transcriber is the speech-to-text gateway. One blocking call per stored
// answer recording.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
