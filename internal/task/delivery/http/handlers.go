package http

import (
	"github.com/gin-gonic/gin"

	"voice-todo-api/internal/task"
	"voice-todo-api/pkg/response"
)

// AddTask godoc
// @Summary     Add a task
// @Description Creates a task from a multipart form: either an audio recording
// @Description (transcribed and normalized) or a JSON task payload in the "task" field.
// @Tags        Task
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file   false "Voice recording"
// @Param       task  formData string false "JSON task payload"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unprocessable payload"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /add_task [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddTaskReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	var output task.CreateOutput
	if req.isVoice() {
		output, err = h.uc.CreateFromVoice(ctx, req.toVoiceInput())
	} else {
		output, err = h.uc.Create(ctx, req.toInput())
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.AddTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns tasks matching the optional filters, ordered by due date
// @Description ascending (tasks without a due date last), then newest first.
// @Tags        Task
// @Produce     json
// @Param       status    query string false "todo | done"
// @Param       due       query string false "today | week | overdue"
// @Param       q         query string false "Substring over title/description"
// @Param       category  query string false "Exact category (case-insensitive)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /list_tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListTasksReq(c)

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a task completed by ID or by first title match.
// @Description A missing or already-completed target reports updated=0.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body completeReq true "Task identifier"
// @Success     200 {object} completeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Complete(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Ask godoc
// @Summary     Ask about tasks
// @Description Answers a natural-language question about the task list.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAskResp(output))
}
