package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is used when no model is configured.
const DefaultChatModel = "gpt-4o-mini"

// Request is a single-turn completion request: one system prompt and one
// user message.  There is no conversation history.
type Request struct {
	SystemPrompt string
	UserMessage  string
}

// Client is the completion service the chat service talks to.
type Client interface {
	Complete(ctx context.Context, req Request) (Reply, error)
}

// messages converts a Request into the chat-completion message list.
func (r Request) messages() []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: r.SystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: r.UserMessage},
	}
}

// OpenAIClient calls an OpenAI-compatible chat completion API.
type OpenAIClient struct {
	client    *openai.Client
	chatModel string
}

// NewOpenAIClient constructs an OpenAI-backed client.  An empty baseURL keeps
// the library default; an empty model falls back to DefaultChatModel.
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultChatModel
	}
	return &OpenAIClient{
		client:    openai.NewClientWithConfig(cfg),
		chatModel: model,
	}
}

// Complete sends the request to the chat completion API.  The response is
// always structured; an empty choice list is left for Resolve to reject.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (Reply, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("openai client not initialized")
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    req.messages(),
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}
	return StructuredReply{Response: resp}, nil
}
