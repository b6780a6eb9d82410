package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-todo-api/internal/model"
	"voice-todo-api/internal/task"
	repo "voice-todo-api/internal/task/repository"
)

const (
	answerNoTasks  = "You have no tasks."
	answerFallback = "I checked your tasks and provided the most relevant ones."

	maxTitlesInAnswer = 5
)

// listingKeywords trigger the listing intent. Matching is case-insensitive
// substring over the whole question.
var listingKeywords = []string{"list", "show", "what are", "which"}

// Ask answers a natural-language question about the user's tasks.
// Routing is deterministic keyword matching, never an LLM call.
func (uc *implUseCase) Ask(ctx context.Context, input task.AskInput) (task.AskOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return task.AskOutput{}, task.ErrEmptyQuestion
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ask ListTasks: %v", err)
		return task.AskOutput{}, err
	}

	if !isListingQuestion(question) {
		return task.AskOutput{Answer: answerFallback, Tasks: tasks}, nil
	}

	return task.AskOutput{Answer: listingAnswer(tasks), Tasks: tasks}, nil
}

func isListingQuestion(question string) bool {
	lowered := strings.ToLower(question)
	for _, kw := range listingKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// listingAnswer summarizes open tasks with up to maxTitlesInAnswer titles.
func listingAnswer(tasks []model.Task) string {
	if len(tasks) == 0 {
		return answerNoTasks
	}

	shown := tasks
	if len(shown) > maxTitlesInAnswer {
		shown = shown[:maxTitlesInAnswer]
	}
	titles := make([]string, 0, len(shown))
	for _, t := range shown {
		titles = append(titles, t.Title)
	}

	answer := fmt.Sprintf("You have %d tasks: %s", len(tasks), strings.Join(titles, ", "))
	if extra := len(tasks) - maxTitlesInAnswer; extra > 0 {
		answer += fmt.Sprintf(" (+%d more)", extra)
	}
	return answer
}
