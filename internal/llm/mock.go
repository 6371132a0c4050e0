package llm

import (
	"context"
	"encoding/json"
)

// MockClient is a deterministic Client implementation for testing. It
// records every structured-generation call so tests can assert on prompt
// content and sampling parameters.
type MockClient struct {
	// Response is the fixed payload returned by GenerateStructured.
	Response json.RawMessage

	// Error, if set, is returned by GenerateStructured instead of a response.
	Error error

	// Calls counts GenerateStructured invocations.
	Calls int

	// LastPrompt stores the most recent prompt passed to GenerateStructured.
	LastPrompt []Message

	// LastSchema, LastTemperature and LastMaxTokens store the most recent
	// generation parameters.
	LastSchema      ResponseSchema
	LastTemperature float64
	LastMaxTokens   int64
}

// NewMockClient creates a mock client with the given fixed payload.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: json.RawMessage(response)}
}

// NewMockClientWithError creates a mock client that always returns an error.
func NewMockClientWithError(err error) *MockClient {
	return &MockClient{Error: err}
}

// BuildPrompt assembles the chat prompt in provider-neutral form.
func (m *MockClient) BuildPrompt(systemPrompt string, examples []Example, instruction string) []Message {
	return buildPrompt(systemPrompt, examples, instruction)
}

// GenerateStructured returns the configured payload or error.
func (m *MockClient) GenerateStructured(ctx context.Context, prompt []Message, schema ResponseSchema, temperature float64, maxTokens int64) (json.RawMessage, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastSchema = schema
	m.LastTemperature = temperature
	m.LastMaxTokens = maxTokens

	if m.Error != nil {
		return nil, m.Error
	}
	return m.Response, nil
}
