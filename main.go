package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/lkuo/naf-backend/app/controllers/auth"
	courses "github.com/lkuo/naf-backend/app/controllers/course"
	lectures "github.com/lkuo/naf-backend/app/controllers/lecture"
	"github.com/lkuo/naf-backend/app/queries"
	"github.com/lkuo/naf-backend/app/routes"
	"github.com/lkuo/naf-backend/pkg/cache"
	"github.com/lkuo/naf-backend/pkg/initialization"
	"github.com/lkuo/naf-backend/pkg/middleware"
	store "github.com/lkuo/naf-backend/pkg/s3"
	"github.com/lkuo/naf-backend/pkg/utils"
	"github.com/lkuo/naf-backend/pkg/zoom"
)

func main() {
	r := gin.New()

	// Init all dependencies
	initialization.Init()

	utils.PrintAppBanner()

	// use custom logger
	r.Use(middleware.CustomLogger())

	credentialStore := queries.NewCredentialStore()
	profileStore := queries.NewProfileStore()
	courseStore := queries.NewCourseStore()
	lectureStore := queries.NewLectureStore()

	courseHandler := courses.NewHandler(courseStore, lectureStore, credentialStore, profileStore, store.S3Uploader{}, cache.RedisClient)
	lectureHandler := lectures.NewHandler(lectureStore, credentialStore, profileStore, zoom.PlaceholderProvisioner{})
	authHandler := auth.NewHandler(credentialStore, profileStore)

	api := r.Group("/api")
	routes.AuthRoute(api, authHandler)
	routes.CourseRoute(api, courseHandler)
	routes.LectureRoute(api, lectureHandler)

	if err := r.Run(); err != nil {
		fmt.Printf("Server failed to start: %v\n", err)
	}
}
