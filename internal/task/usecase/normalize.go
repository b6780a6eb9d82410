package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"voice-todo-api/internal/model"
	"voice-todo-api/internal/task"
	"voice-todo-api/pkg/llmprovider"
)

const (
	normalizeSystemPrompt = "You convert user notes into a JSON task object. " +
		"Return ONLY valid JSON with keys: title (string), description (string|null), " +
		"category (string|null), priority (low|med|high), due_date (ISO-8601 datetime|null)."

	normalizeTemperature = 0.2
	normalizeMaxTokens   = 512

	fallbackTitle = "Untitled"
	maxTitleLen   = 100
)

// parsedDraft mirrors the JSON object the backend is instructed to emit.
type parsedDraft struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// Normalize converts raw natural-language text into a validated draft.
// With no LLM backend configured it falls back to a deterministic first-line
// draft and never fails. Retry/backoff for transient backend failures lives
// in the provider manager.
func (uc *implUseCase) Normalize(ctx context.Context, text string) (task.Draft, error) {
	if uc.llm == nil {
		return fallbackDraft(text), nil
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		System:      normalizeSystemPrompt,
		Prompt:      "Text: " + text + "\nRespond with a single-line minified JSON object.",
		Temperature: normalizeTemperature,
		MaxTokens:   normalizeMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Normalize GenerateContent: %v", err)
		return task.Draft{}, fmt.Errorf("%w: %v", task.ErrNormalizationFailed, err)
	}

	parsed, err := parseDraftJSON(resp.Text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Normalize: unparseable backend output %q: %v", resp.Text, err)
		return task.Draft{}, fmt.Errorf("%w: backend returned unparseable output", task.ErrNormalizationFailed)
	}

	return buildDraft(task.CreateInput{
		Title:       parsed.Title,
		Description: deref(parsed.Description),
		Category:    deref(parsed.Category),
		Priority:    parsed.Priority,
		DueDate:     deref(parsed.DueDate),
	})
}

// parseDraftJSON parses the backend response, falling back to the outermost
// {...} substring when the raw text is wrapped in prose or code fences.
func parseDraftJSON(text string) (parsedDraft, error) {
	var parsed parsedDraft
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &parsed); err == nil {
		return parsed, nil
	}

	cleaned := extractJSON(text)
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return parsedDraft{}, err
	}
	return parsed, nil
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// extractJSON strips markdown code fences, then falls back to the substring
// between the first '{' and the last '}'.
func extractJSON(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		text = matches[1]
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// fallbackDraft derives a draft without any backend: first line of the input,
// trimmed, truncated to maxTitleLen characters, "Untitled" when empty.
// Everything else defaults.
func fallbackDraft(text string) task.Draft {
	line := strings.TrimSpace(text)
	if idx := strings.IndexByte(line, '\n'); idx != -1 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)

	if runes := []rune(line); len(runes) > maxTitleLen {
		line = string(runes[:maxTitleLen])
	}
	if line == "" {
		line = fallbackTitle
	}

	return task.Draft{
		Title:    line,
		Priority: model.PriorityMed,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
