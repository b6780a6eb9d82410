package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voice-todo-api/internal/model"
	"voice-todo-api/internal/task"
)

func TestNormalize_FallbackWithoutBackend(t *testing.T) {
	uc := New(mockLogger{}, nil, nil, &mockRepo{})

	t.Run("First Line Only", func(t *testing.T) {
		draft, err := uc.Normalize(context.Background(), "Buy milk\nand eggs")
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if draft.Title != "Buy milk" {
			t.Errorf("title = %q, want %q", draft.Title, "Buy milk")
		}
		if draft.Priority != model.PriorityMed {
			t.Errorf("priority = %q, want med", draft.Priority)
		}
		if draft.Description != "" || draft.Category != "" || draft.DueDate != nil {
			t.Errorf("fallback draft should leave all other fields empty: %+v", draft)
		}
	})

	t.Run("Long Title Truncated", func(t *testing.T) {
		draft, err := uc.Normalize(context.Background(), strings.Repeat("a", 150))
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if got := len([]rune(draft.Title)); got != 100 {
			t.Errorf("title length = %d, want 100", got)
		}
	})

	t.Run("Blank Input Gets Placeholder", func(t *testing.T) {
		draft, err := uc.Normalize(context.Background(), "   \n\n  ")
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if draft.Title != "Untitled" {
			t.Errorf("title = %q, want Untitled", draft.Title)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, _ := uc.Normalize(context.Background(), "Call the dentist tomorrow")
		second, _ := uc.Normalize(context.Background(), "Call the dentist tomorrow")
		if first.Title != second.Title {
			t.Errorf("fallback must be deterministic: %q vs %q", first.Title, second.Title)
		}
	})
}

func TestNormalize_BackendJSON(t *testing.T) {
	const payload = `{"title":"Pay rent","description":"first of the month","category":"finance","priority":"high","due_date":"2025-07-01T09:00:00Z"}`

	newUC := func(text string) task.UseCase {
		return New(mockLogger{}, newTestManager(&fakeChatProvider{text: text}), nil, &mockRepo{})
	}

	assertDraft := func(t *testing.T, draft task.Draft) {
		t.Helper()
		if draft.Title != "Pay rent" {
			t.Errorf("title = %q", draft.Title)
		}
		if draft.Description != "first of the month" {
			t.Errorf("description = %q", draft.Description)
		}
		if draft.Category != "finance" {
			t.Errorf("category = %q", draft.Category)
		}
		if draft.Priority != model.PriorityHigh {
			t.Errorf("priority = %q", draft.Priority)
		}
		want := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
		if draft.DueDate == nil || !draft.DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", draft.DueDate, want)
		}
	}

	t.Run("Plain JSON", func(t *testing.T) {
		draft, err := newUC(payload).Normalize(context.Background(), "pay rent")
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		assertDraft(t, draft)
	})

	t.Run("Fenced JSON", func(t *testing.T) {
		draft, err := newUC("```json\n"+payload+"\n```").Normalize(context.Background(), "pay rent")
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		assertDraft(t, draft)
	})

	t.Run("JSON Wrapped In Prose", func(t *testing.T) {
		draft, err := newUC("Here is the task:\n"+payload+"\nLet me know!").Normalize(context.Background(), "pay rent")
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		assertDraft(t, draft)
	})

	t.Run("Null Optionals", func(t *testing.T) {
		draft, err := newUC(`{"title":"Walk dog","description":null,"category":null,"priority":"low","due_date":null}`).
			Normalize(context.Background(), "walk dog")
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if draft.Description != "" || draft.Category != "" || draft.DueDate != nil {
			t.Errorf("null optionals must map to empty fields: %+v", draft)
		}
		if draft.Priority != model.PriorityLow {
			t.Errorf("priority = %q, want low", draft.Priority)
		}
	})
}

func TestNormalize_BackendErrors(t *testing.T) {
	t.Run("Unparseable Output", func(t *testing.T) {
		uc := New(mockLogger{}, newTestManager(&fakeChatProvider{text: "sorry, I cannot help with that"}), nil, &mockRepo{})

		_, err := uc.Normalize(context.Background(), "pay rent")
		if !errors.Is(err, task.ErrNormalizationFailed) {
			t.Errorf("err = %v, want ErrNormalizationFailed", err)
		}
	})

	t.Run("Provider Failure", func(t *testing.T) {
		uc := New(mockLogger{}, newTestManager(&fakeChatProvider{err: errBoom}), nil, &mockRepo{})

		_, err := uc.Normalize(context.Background(), "pay rent")
		if !errors.Is(err, task.ErrNormalizationFailed) {
			t.Errorf("err = %v, want ErrNormalizationFailed", err)
		}
	})

	t.Run("Empty Title Rejected", func(t *testing.T) {
		uc := New(mockLogger{}, newTestManager(&fakeChatProvider{text: `{"title":"  ","priority":"med"}`}), nil, &mockRepo{})

		_, err := uc.Normalize(context.Background(), "hmm")
		if !errors.Is(err, task.ErrInvalidPayload) {
			t.Errorf("err = %v, want ErrInvalidPayload", err)
		}
	})

	t.Run("Bad Due Date Rejected", func(t *testing.T) {
		uc := New(mockLogger{}, newTestManager(&fakeChatProvider{text: `{"title":"x","due_date":"next tuesday"}`}), nil, &mockRepo{})

		_, err := uc.Normalize(context.Background(), "x")
		if !errors.Is(err, task.ErrInvalidPayload) {
			t.Errorf("err = %v, want ErrInvalidPayload", err)
		}
	})
}
