package courses

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetCourse handles GET /courses/:courseId. Soft-deleted courses answer 404.
func (h *Handler) GetCourse(c *gin.Context) {
	courseID, err := primitive.ObjectIDFromHex(c.Param("courseId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Course Id is requested")
		return
	}

	ctx := c.Request.Context()

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, courseCacheKey(courseID)).Bytes(); err == nil {
			c.Data(200, "application/json; charset=utf-8", cached)
			return
		}
	}

	course, err := h.courses.GetActive(ctx, courseID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.ErrorResponse(c, 404, "Invalid course Id")
		return
	} else if err != nil {
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
		return
	}

	presenter, err := h.profiles.GetPresenter(ctx, course.Presenter)
	if err != nil {
		// Every course is owned; a dangling presenter ref is an integrity error.
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
		return
	}

	result := newCourseResponse(course, presenter)

	if h.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			h.cache.Set(ctx, courseCacheKey(courseID), payload, courseCacheTTL)
		}
	}

	c.JSON(200, result)
}
