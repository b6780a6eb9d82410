package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voice-todo-api/pkg/openai"
)

func newTestClient(t *testing.T, url string) openai.IOpenAI {
	t.Helper()
	client, err := openai.New(openai.Config{
		APIKey: "test-key",
		APIURL: url,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		_, err := openai.New(openai.Config{})
		if err == nil {
			t.Fatal("expected error for missing api key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := openai.Config{APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ChatModel != openai.DefaultChatModel {
			t.Errorf("expected default chat model, got %s", cfg.ChatModel)
		}
		if cfg.WhisperModel != openai.DefaultWhisperModel {
			t.Errorf("expected default whisper model, got %s", cfg.WhisperModel)
		}
		if cfg.APIURL != openai.DefaultAPIURL {
			t.Errorf("expected default api url, got %s", cfg.APIURL)
		}
	})
}

func TestCreateChatCompletion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
				t.Errorf("unexpected auth header: %s", auth)
			}

			var req map[string]any
			json.NewDecoder(r.Body).Decode(&req)
			if req["model"] != openai.DefaultChatModel {
				t.Errorf("unexpected model: %v", req["model"])
			}

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"model": "gpt-4o-mini",
				"choices": [{"message": {"role": "assistant", "content": "{\"title\":\"Buy milk\"}"}}],
				"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
			}`))
		}))
		defer ts.Close()

		client := newTestClient(t, ts.URL)
		resp, err := client.CreateChatCompletion(context.Background(), &openai.ChatRequest{
			Messages: []openai.ChatMessage{{Role: "user", Content: "buy milk"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != `{"title":"Buy milk"}` {
			t.Errorf("unexpected text: %s", resp.Text)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "rate limited"}}`))
		}))
		defer ts.Close()

		client := newTestClient(t, ts.URL)
		_, err := client.CreateChatCompletion(context.Background(), &openai.ChatRequest{})
		if err == nil {
			t.Fatal("expected error on 429")
		}
		if !strings.Contains(err.Error(), "429") {
			t.Errorf("expected status in error, got %v", err)
		}
	})

	t.Run("Empty Choices", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}))
		defer ts.Close()

		client := newTestClient(t, ts.URL)
		_, err := client.CreateChatCompletion(context.Background(), &openai.ChatRequest{})
		if err == nil {
			t.Fatal("expected error on empty choices")
		}
	})
}

func TestTranscribe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/audio/transcriptions" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Fatalf("failed to parse multipart: %v", err)
			}
			if model := r.FormValue("model"); model != openai.DefaultWhisperModel {
				t.Errorf("unexpected model field: %s", model)
			}
			if format := r.FormValue("response_format"); format != "text" {
				t.Errorf("unexpected response_format: %s", format)
			}
			file, header, err := r.FormFile("file")
			if err != nil {
				t.Fatalf("missing file field: %v", err)
			}
			defer file.Close()
			if !strings.HasSuffix(header.Filename, ".mpeg") {
				t.Errorf("unexpected filename: %s", header.Filename)
			}

			w.Write([]byte("Buy milk tomorrow\n"))
		}))
		defer ts.Close()

		client := newTestClient(t, ts.URL)
		text, err := client.Transcribe(context.Background(), []byte("fake-audio"), "audio/mpeg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "Buy milk tomorrow" {
			t.Errorf("unexpected transcript: %q", text)
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("unsupported format"))
		}))
		defer ts.Close()

		client := newTestClient(t, ts.URL)
		_, err := client.Transcribe(context.Background(), []byte("x"), "audio/wav")
		if err == nil {
			t.Fatal("expected error on 400")
		}
	})
}
