package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Eklavvyaaaaa/CIVIX/ai"

	"github.com/gin-gonic/gin"
)

// ChatController fronts the AI assistant widget.
type ChatController struct {
	assistant *ai.Assistant
}

func NewChatController(assistant *ai.Assistant) *ChatController {
	return &ChatController{assistant: assistant}
}

// Send relays a user message to the assistant and returns its reply. A
// chat service fault never fails the request; the assistant answers with
// its fallback message instead.
func (cc *ChatController) Send(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	reply := cc.assistant.Send(ctx, input.Message)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// History returns the ordered conversation so far.
func (cc *ChatController) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": cc.assistant.History()})
}
