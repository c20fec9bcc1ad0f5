package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/controllers/auth"
)

func AuthRoute(r *gin.RouterGroup, handler *auth.Handler) {
	group := r.Group("/auth")

	group.POST("/signup", handler.Signup)
	group.POST("/login", handler.Login)
}
