package routes

import (
	"github.com/Eklavvyaaaaa/CIVIX/controllers"

	"github.com/gin-gonic/gin"
)

// ReportRoutes sets up the read-only feed and map routes
func ReportRoutes(r *gin.Engine, rc *controllers.ReportController) {
	r.GET("/api/home", rc.Home)

	reports := r.Group("/api/reports")
	{
		reports.GET("", rc.List)
		reports.GET("/recent", rc.Recent)
		reports.GET("/markers", rc.Markers)
		reports.GET("/:id", rc.Get)
	}
}
