package http

import (
	"strings"
	"time"

	"voice-todo-api/internal/model"
	"voice-todo-api/internal/task"
)

// --- Request DTOs ---

// taskPayload is the JSON object accepted in the "task" form field.
type taskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

type addTaskReq struct {
	audio   []byte
	mime    string
	payload taskPayload
}

func (r addTaskReq) isVoice() bool { return len(r.audio) > 0 }

func (r addTaskReq) toVoiceInput() task.CreateFromVoiceInput {
	return task.CreateFromVoiceInput{
		Audio: r.audio,
		MIME:  r.mime,
	}
}

func (r addTaskReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.payload.Title,
		Description: r.payload.Description,
		Category:    r.payload.Category,
		Priority:    r.payload.Priority,
		DueDate:     r.payload.DueDate,
	}
}

// ---

type listTasksReq struct {
	Status   string `form:"status"`
	Due      string `form:"due"`
	Query    string `form:"q"`
	Category string `form:"category"`
}

func (r listTasksReq) toInput() task.ListInput {
	return task.ListInput{
		Status:    r.Status,
		DueBucket: r.Due,
		Query:     r.Query,
		Category:  r.Category,
	}
}

// ---

type completeReq struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (r completeReq) validate() error {
	if strings.TrimSpace(r.ID) == "" && strings.TrimSpace(r.Title) == "" {
		return task.ErrMissingIDOrTitle
	}
	return nil
}

func (r completeReq) toInput() task.CompleteInput {
	return task.CompleteInput{
		ID:    strings.TrimSpace(r.ID),
		Title: strings.TrimSpace(r.Title),
	}
}

// ---

type askReq struct {
	Question string `json:"question"`
}

func (r askReq) validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return task.ErrEmptyQuestion
	}
	return nil
}

func (r askReq) toInput() task.AskInput {
	return task.AskInput{Question: r.Question}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completedAt"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: optString(t.Description),
		Category:    optString(t.Category),
		Priority:    string(t.Priority),
		DueDate:     optTime(t.DueDate),
		Completed:   t.Completed,
		CompletedAt: optTime(t.CompletedAt),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// optString maps the empty string to JSON null.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks: tasks,
		Count: out.Count,
	}
}

type completeResp struct {
	Updated int `json:"updated"`
}

func (h *handler) newCompleteResp(out task.CompleteOutput) completeResp {
	return completeResp{Updated: out.Updated}
}

type askResp struct {
	Answer string     `json:"answer"`
	Tasks  []taskResp `json:"tasks,omitempty"`
}

func (h *handler) newAskResp(out task.AskOutput) askResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return askResp{
		Answer: out.Answer,
		Tasks:  tasks,
	}
}
