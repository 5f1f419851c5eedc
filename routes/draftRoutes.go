package routes

import (
	"github.com/Eklavvyaaaaa/CIVIX/controllers"
	"github.com/Eklavvyaaaaa/CIVIX/middlewares"

	"github.com/gin-gonic/gin"
)

// DraftRoutes sets up the submission workflow routes
func DraftRoutes(r *gin.Engine, dc *controllers.DraftController) {
	draft := r.Group("/api/draft")
	{
		draft.GET("", dc.State)
		draft.POST("/image", dc.UploadImage)
		draft.PATCH("", dc.Update)
		draft.POST("/location", dc.Location)
		draft.POST("/review", dc.Review)
		draft.POST("/confirm", middlewares.SubmitRateLimiter(20), dc.Confirm)
		draft.POST("/cancel-review", dc.CancelReview)
		draft.POST("/discard", dc.Discard)
	}
}
