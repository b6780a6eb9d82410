package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Paths are flat to keep voice-client integrations trivial.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/add_task", h.AddTask)
	rg.GET("/list_tasks", h.ListTasks)
	rg.POST("/complete", h.Complete)
	rg.POST("/ask", h.Ask)
}
