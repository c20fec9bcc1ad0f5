package lectures

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetLecture handles GET /lectures/:lectureId. Soft-deleted lectures
// answer 404.
func (h *Handler) GetLecture(c *gin.Context) {
	lectureID, err := primitive.ObjectIDFromHex(c.Param("lectureId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Lecture Id is requested")
		return
	}

	ctx := c.Request.Context()

	lecture, err := h.lectures.GetActive(ctx, lectureID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.ErrorResponse(c, 404, "Invalid lecture Id")
		return
	} else if err != nil {
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
		return
	}

	presenter, err := h.profiles.GetPresenter(ctx, lecture.Presenter)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
		return
	}
	teacher, err := h.profiles.GetTeacher(ctx, lecture.Teacher)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
		return
	}

	c.JSON(200, newLectureResponse(lecture, presenter, teacher))
}
