// Package llm provides the chat-completion client used for recipe
// generation. It defines a provider-agnostic capability interface with a
// concrete implementation for any OpenAI-compatible endpoint and a
// deterministic mock for testing.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrGenerationFailed covers transport failures and empty completions
	// after the client's own retry budget is exhausted.
	ErrGenerationFailed = errors.New("LLM request failed")

	// ErrInvalidConfig is returned when the client cannot be constructed.
	ErrInvalidConfig = errors.New("invalid LLM configuration")
)

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a chat prompt.
type Message struct {
	Role    string
	Content string
}

// Example is a prior input/output turn used for few-shot prompting. The
// prompt builder supports it, although recipe generation is single-shot and
// never passes prior turns.
type Example struct {
	Input  string
	Output string
}

// ResponseSchema constrains a completion to a declared JSON shape
// (structured decoding enforced by the provider).
type ResponseSchema struct {
	Name        string
	Description string
	Schema      map[string]any
}

// Client defines the interface for interacting with language models.
// Implementations must be stateless and safe for concurrent use.
type Client interface {
	// BuildPrompt assembles a full chat prompt from a system prompt,
	// optional few-shot examples, and the instruction turn.
	BuildPrompt(systemPrompt string, examples []Example, instruction string) []Message

	// GenerateStructured feeds the prompt to the model and returns the raw
	// schema-constrained JSON payload of the completion.
	GenerateStructured(ctx context.Context, prompt []Message, schema ResponseSchema, temperature float64, maxTokens int64) (json.RawMessage, error)
}

// buildPrompt is the provider-neutral prompt assembly shared by all
// implementations. Examples become alternating user/assistant turns.
func buildPrompt(systemPrompt string, examples []Example, instruction string) []Message {
	messages := make([]Message, 0, 2*len(examples)+2)
	if systemPrompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: systemPrompt})
	}
	for _, ex := range examples {
		messages = append(messages,
			Message{Role: RoleUser, Content: ex.Input},
			Message{Role: RoleAssistant, Content: ex.Output},
		)
	}
	messages = append(messages, Message{Role: RoleUser, Content: instruction})
	return messages
}
