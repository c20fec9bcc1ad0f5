package routes

import (
	"github.com/gin-gonic/gin"
	lectures "github.com/lkuo/naf-backend/app/controllers/lecture"
	"github.com/lkuo/naf-backend/pkg/middleware"
)

func LectureRoute(r *gin.RouterGroup, handler *lectures.Handler) {
	lecture := r.Group("/lectures")

	lecture.GET("/:lectureId", handler.GetLecture)

	authorized := lecture.Group("")
	authorized.Use(middleware.IsAuthorized())
	authorized.POST("", handler.CreateLecture)
	authorized.PUT("", handler.UpdateLecture)
	authorized.DELETE("", handler.DeleteLecture)
}
