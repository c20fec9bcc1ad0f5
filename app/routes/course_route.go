package routes

import (
	"github.com/gin-gonic/gin"
	courses "github.com/lkuo/naf-backend/app/controllers/course"
	"github.com/lkuo/naf-backend/pkg/middleware"
)

func CourseRoute(r *gin.RouterGroup, handler *courses.Handler) {
	course := r.Group("/courses")

	// Published content is readable without a credential
	course.GET("/:courseId", handler.GetCourse)
	course.GET("/:courseId/lectures", handler.GetLectures)

	authorized := course.Group("")
	authorized.Use(middleware.IsAuthorized())
	authorized.POST("", handler.CreateCourse)
	authorized.PUT("", handler.UpdateCourse)
	authorized.DELETE("", handler.DeleteCourse)
	authorized.POST("/:courseId/image", handler.UploadImage)
}
