package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

type openaiImpl struct {
	apiKey       string
	apiURL       string
	chatModel    string
	whisperModel string
	httpClient   *http.Client
}

func newOpenAIImpl(cfg Config) *openaiImpl {
	return &openaiImpl{
		apiKey:       cfg.APIKey,
		apiURL:       cfg.APIURL,
		chatModel:    cfg.ChatModel,
		whisperModel: cfg.WhisperModel,
		httpClient:   cfg.HTTPClient,
	}
}

// ChatModel returns the chat model being used.
func (o *openaiImpl) ChatModel() string {
	return o.chatModel
}

// CreateChatCompletion sends a chat completion request.
func (o *openaiImpl) CreateChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	wireReq := chatCompletionRequest{
		Model:       o.chatModel,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.apiURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty choices in response")
	}

	return &ChatResponse{
		Text:  result.Choices[0].Message.Content,
		Model: result.Model,
		Usage: result.Usage,
	}, nil
}

// Transcribe uploads audio bytes to the transcriptions endpoint and returns
// the plain-text transcript.
func (o *openaiImpl) Transcribe(ctx context.Context, audio []byte, mime string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "audio."+extFromMIME(mime))
	if err != nil {
		return "", fmt.Errorf("openai: failed to build form: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("openai: failed to write audio: %w", err)
	}
	if err := writer.WriteField("model", o.whisperModel); err != nil {
		return "", fmt.Errorf("openai: failed to build form: %w", err)
	}
	if err := writer.WriteField("response_format", "text"); err != nil {
		return "", fmt.Errorf("openai: failed to build form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("openai: failed to finalize form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.apiURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(raw))
	}

	return strings.TrimSpace(string(raw)), nil
}

// extFromMIME maps a MIME type like "audio/mpeg" to a filename extension.
// Whisper uses the extension to sniff the container format.
func extFromMIME(mime string) string {
	if idx := strings.LastIndex(mime, "/"); idx != -1 && idx+1 < len(mime) {
		return mime[idx+1:]
	}
	return "mpeg"
}
