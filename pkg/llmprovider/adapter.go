package llmprovider

import (
	"context"

	"voice-todo-api/pkg/openai"
)

// OpenAIAdapter adapts an openai.IChat to the Provider interface.
type OpenAIAdapter struct {
	client openai.IChat
}

// NewOpenAIAdapter creates a Provider backed by the OpenAI chat client.
func NewOpenAIAdapter(client openai.IChat) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider.
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.ChatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, openai.ChatMessage{Role: "user", Content: req.Prompt})

	resp, err := a.client.CreateChatCompletion(ctx, &openai.ChatRequest{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name implements Provider.
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model implements Provider.
func (a *OpenAIAdapter) Model() string {
	return a.client.ChatModel()
}
