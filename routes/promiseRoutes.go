package routes

import (
	"github.com/gin-gonic/gin"

	"promisewatch-be/controllers"
)

func PromiseRoutes(r *gin.Engine, pc *controllers.PromiseController, sc *controllers.StatsController) {
	group := r.Group("/api/promises")
	{
		group.GET("", pc.GetAll)
		group.GET("/flagship", pc.GetFlagship)
		group.GET("/search", pc.Search)
		group.GET("/:id", pc.GetByID)
		group.GET("/:id/verification", pc.GetVerification)
		group.GET("/:id/reports", pc.GetReports)
	}
	r.GET("/api/stats", sc.Get)
}
