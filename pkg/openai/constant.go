package openai

import "time"

const (
	// DefaultAPIURL is the default OpenAI-compatible API endpoint.
	DefaultAPIURL = "https://api.openai.com/v1"

	// DefaultChatModel is the default model for text-to-structure parsing.
	DefaultChatModel = "gpt-4o-mini"

	// DefaultWhisperModel is the default speech-to-text model.
	DefaultWhisperModel = "whisper-1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second
)
