package routes

import (
	"github.com/gin-gonic/gin"

	"promisewatch-be/controllers"
)

func AdminRoutes(r *gin.Engine, ac *controllers.AdminController, admin gin.HandlerFunc) {
	group := r.Group("/api/admin", admin)
	{
		group.POST("/promises/seed", ac.Seed)
		group.POST("/promises/clear", ac.Clear)
		group.POST("/promises/reseed", ac.Reseed)
		group.POST("/indicators/snapshot", ac.Snapshot)
	}
}
