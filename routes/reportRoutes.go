package routes

import (
	"github.com/gin-gonic/gin"

	"promisewatch-be/controllers"
)

// ReportRoutes mounts report submission behind auth and any extra guards,
// such as the rate limiter, in order.
func ReportRoutes(r *gin.Engine, rc *controllers.ReportController, auth gin.HandlerFunc, guards ...gin.HandlerFunc) {
	group := r.Group("/api/reports")
	{
		create := append([]gin.HandlerFunc{auth}, guards...)
		group.POST("", append(create, rc.Create)...)
		group.GET("/recent", rc.GetRecent)
	}
}
