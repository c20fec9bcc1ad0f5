package lectures

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/guard"
	"github.com/lkuo/naf-backend/app/queries"
	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type updateLectureRequest struct {
	ID          string `json:"_id" binding:"required,objectid"`
	Name        string `json:"name" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Teacher     string `json:"teacher" binding:"required,objectid"`
	Description string `json:"description"`
	ZoomLink    string `json:"zoomLink"`
	VimeoLink   string `json:"vimeoLink"`
}

var updateLectureMessages = map[string]string{
	"ID":      "Lecture Id is required",
	"Name":    "Lecture name is required",
	"Time":    "Date is required",
	"Teacher": "Teacher Id is required",
}

// UpdateLecture handles PUT /lectures. Only the owning presenter may update.
func (h *Handler) UpdateLecture(c *gin.Context) {
	credentialID, err := utils.GetCredentialIDFromContext(c)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrCredentialIDNotFound, err)
		return
	}

	var request updateLectureRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, utils.FirstValidationMessage(err, updateLectureMessages))
		return
	}
	lectureTime, err := parseLectureTime(request.Time)
	if err != nil {
		utils.ErrorResponse(c, 400, "Date is required")
		return
	}
	lectureID, _ := primitive.ObjectIDFromHex(request.ID)
	teacherID, _ := primitive.ObjectIDFromHex(request.Teacher)

	ctx := c.Request.Context()

	presenter, err := guard.VerifyOwner(ctx, h.credentials, h.profiles, credentialID, lectureID, h.lectureOwner)
	if err != nil {
		respondGateError(c, err)
		return
	}

	lecture, err := h.lectures.Update(ctx, lectureID, queries.LectureUpdate{
		Name:        request.Name,
		Time:        lectureTime,
		Description: request.Description,
		Teacher:     teacherID,
		ZoomLink:    request.ZoomLink,
		VimeoLink:   request.VimeoLink,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.ErrorResponse(c, 404, "Invalid lecture Id")
		return
	} else if err != nil {
		utils.ServerErrorResponse(c, utils.ErrSaveData, err)
		return
	}

	teacher, err := h.profiles.GetTeacher(ctx, teacherID)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
		return
	}

	c.JSON(200, newLectureResponse(lecture, presenter, teacher))
}
