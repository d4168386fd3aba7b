package routes

import (
	"github.com/gin-gonic/gin"

	"promisewatch-be/controllers"
)

// AuthRoutes sets up the anonymous session routes
func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, auth gin.HandlerFunc) {
	group := r.Group("/api/auth")
	{
		group.POST("/anonymous", ac.SignInAnonymously)
		group.GET("/me", auth, ac.GetMe)
	}
}
