package openai

import "context"

// IOpenAI defines the interface for the OpenAI-compatible API client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	IChat
	ITranscriber
}

// IChat is the text generation capability.
type IChat interface {
	// CreateChatCompletion sends a chat completion request.
	CreateChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// ChatModel returns the chat model being used.
	ChatModel() string
}

// ITranscriber is the speech-to-text capability.
type ITranscriber interface {
	// Transcribe converts raw audio bytes into a transcript.
	Transcribe(ctx context.Context, audio []byte, mime string) (string, error)
}

// New creates a new OpenAI client with the given configuration.
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
