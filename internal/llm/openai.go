package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/mealsmith/recipe-service/config"
)

// OpenAIClient implements Client against any OpenAI-compatible
// chat-completion endpoint. Rate-limit retries and timeouts live here, at the
// client boundary: callers do not add their own retry loops.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a client for the endpoint configured in cfg.
func NewOpenAIClient(cfg *config.Config) (*OpenAIClient, error) {
	if cfg.LLMEndpoint == "" {
		return nil, fmt.Errorf("%w: missing endpoint (set LLM_ENDPOINT)", ErrInvalidConfig)
	}
	if cfg.LLMModelName == "" {
		return nil, fmt.Errorf("%w: missing model name (set LLM_MODEL_NAME)", ErrInvalidConfig)
	}

	client := openai.NewClient(
		option.WithBaseURL(cfg.LLMEndpoint),
		option.WithAPIKey(cfg.LLMAPIKey),
		option.WithRequestTimeout(120*time.Second),
		option.WithMaxRetries(10),
	)

	return &OpenAIClient{
		client: client,
		model:  cfg.LLMModelName,
	}, nil
}

// BuildPrompt assembles the chat prompt in provider-neutral form.
func (c *OpenAIClient) BuildPrompt(systemPrompt string, examples []Example, instruction string) []Message {
	return buildPrompt(systemPrompt, examples, instruction)
}

// GenerateStructured sends the prompt with a json_schema response format and
// returns the completion payload, which the provider guarantees matches the
// schema.
func (c *OpenAIClient) GenerateStructured(ctx context.Context, prompt []Message, schema ResponseSchema, temperature float64, maxTokens int64) (json.RawMessage, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(prompt))
	for _, m := range prompt {
		switch m.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model),
		Messages:    messages,
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        schema.Name,
					Description: openai.String(schema.Description),
					Schema:      schema.Schema,
					Strict:      openai.Bool(true),
				},
			},
		},
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: no response from API", ErrGenerationFailed)
	}

	return json.RawMessage(completion.Choices[0].Message.Content), nil
}
