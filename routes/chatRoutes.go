package routes

import (
	"github.com/Eklavvyaaaaa/CIVIX/controllers"

	"github.com/gin-gonic/gin"
)

// ChatRoutes sets up the assistant routes
func ChatRoutes(r *gin.Engine, cc *controllers.ChatController) {
	chat := r.Group("/api/chat")
	{
		chat.POST("", cc.Send)
		chat.GET("/history", cc.History)
	}
}
