package routes

import (
	"github.com/gin-gonic/gin"

	"promisewatch-be/controllers"
)

func IndicatorRoutes(r *gin.Engine, ic *controllers.IndicatorController) {
	group := r.Group("/api/indicators")
	{
		group.GET("", ic.GetAll)
		group.GET("/:indicator", ic.GetOne)
		group.GET("/:indicator/history", ic.GetHistory)
	}
}
