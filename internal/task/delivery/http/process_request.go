package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"voice-todo-api/internal/task"
)

// maxAudioBytes bounds how much of an uploaded recording is read (25 MB,
// the Whisper API upload limit).
const maxAudioBytes = 25 << 20

// processAddTaskReq reads the multipart form: an "audio" file takes the voice
// path, otherwise the "task" field must carry a JSON payload.
func (h *handler) processAddTaskReq(c *gin.Context) (addTaskReq, error) {
	var req addTaskReq

	file, header, err := c.Request.FormFile("audio")
	if err == nil {
		defer file.Close()
		req.audio, err = readAudio(file)
		if err != nil {
			return req, fmt.Errorf("%w: %v", task.ErrInvalidPayload, err)
		}
		req.mime = header.Header.Get("Content-Type")
		return req, nil
	}

	raw := c.PostForm("task")
	if raw == "" {
		return req, task.ErrMissingPayload
	}
	if err := json.Unmarshal([]byte(raw), &req.payload); err != nil {
		return req, fmt.Errorf("%w: task field is not valid JSON", task.ErrInvalidPayload)
	}
	return req, nil
}

func readAudio(file multipart.File) ([]byte, error) {
	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes+1))
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("audio file is empty")
	}
	if len(audio) > maxAudioBytes {
		return nil, fmt.Errorf("audio file exceeds %d bytes", maxAudioBytes)
	}
	return audio, nil
}

// processListTasksReq binds the list query parameters. Unknown filter values
// are passed through and simply match nothing special downstream.
func (h *handler) processListTasksReq(c *gin.Context) listTasksReq {
	var req listTasksReq
	_ = c.ShouldBindQuery(&req)
	return req
}

// processCompleteReq binds and validates the completion request body.
func (h *handler) processCompleteReq(c *gin.Context) (completeReq, error) {
	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", task.ErrInvalidPayload, err)
	}
	return req, req.validate()
}

// processAskReq binds and validates the question request body.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", task.ErrInvalidPayload, err)
	}
	return req, req.validate()
}
