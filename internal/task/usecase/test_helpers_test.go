package usecase

import (
	"context"
	"errors"

	"voice-todo-api/internal/model"
	repo "voice-todo-api/internal/task/repository"
	"voice-todo-api/pkg/llmprovider"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                    {}
func (mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}

// mockRepo routes each call through an optional func field so tests override
// only what they need. Unset fields return zero values.
type mockRepo struct {
	createTaskFn      func(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error)
	listTasksFn       func(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error)
	completeByIDFn    func(ctx context.Context, id string) (int, error)
	completeByTitleFn func(ctx context.Context, title string) (int, error)
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.createTaskFn == nil {
		return model.Task{}, nil
	}
	return m.createTaskFn(ctx, opt)
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	if m.listTasksFn == nil {
		return nil, nil
	}
	return m.listTasksFn(ctx, opt)
}

func (m *mockRepo) CompleteByID(ctx context.Context, id string) (int, error) {
	if m.completeByIDFn == nil {
		return 0, nil
	}
	return m.completeByIDFn(ctx, id)
}

func (m *mockRepo) CompleteByTitle(ctx context.Context, title string) (int, error) {
	if m.completeByTitleFn == nil {
		return 0, nil
	}
	return m.completeByTitleFn(ctx, title)
}

// fakeChatProvider replays canned completions, or fails every call.
type fakeChatProvider struct {
	text string
	err  error
}

func (f *fakeChatProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text, ProviderName: f.Name(), ModelName: f.Model()}, nil
}

func (f *fakeChatProvider) Name() string  { return "fake" }
func (f *fakeChatProvider) Model() string { return "fake-model" }

func newTestManager(p llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{RetryAttempts: 1}, mockLogger{})
}

// fakeTranscriber returns a fixed transcript or a fixed error.
type fakeTranscriber struct {
	transcript string
	err        error

	gotAudio []byte
	gotMIME  string
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, mime string) (string, error) {
	f.gotAudio = audio
	f.gotMIME = mime
	if f.err != nil {
		return "", f.err
	}
	return f.transcript, nil
}

var errBoom = errors.New("boom")
