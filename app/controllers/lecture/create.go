package lectures

import (
	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/guard"
	"github.com/lkuo/naf-backend/app/models"
	"github.com/lkuo/naf-backend/pkg/utils"
	"github.com/lkuo/naf-backend/pkg/zoom"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createLectureRequest is the request body for creating a new lecture.
// Field order matters: the first failing field's message is the response.
type createLectureRequest struct {
	Name        string `json:"name" binding:"required"`
	Teacher     string `json:"teacher" binding:"required,objectid"`
	Course      string `json:"course" binding:"required,objectid"`
	Time        string `json:"time" binding:"required"`
	Description string `json:"description"`
}

var createLectureMessages = map[string]string{
	"Name":    "Lecture name is required",
	"Teacher": "Teacher Id is required",
	"Course":  "Course Id is required",
	"Time":    "Date is required",
}

// CreateLecture handles POST /lectures. The lecture is owned by the
// caller's presenter; its meeting link comes from the provisioner.
func (h *Handler) CreateLecture(c *gin.Context) {
	credentialID, err := utils.GetCredentialIDFromContext(c)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrCredentialIDNotFound, err)
		return
	}

	var request createLectureRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, utils.FirstValidationMessage(err, createLectureMessages))
		return
	}
	lectureTime, err := parseLectureTime(request.Time)
	if err != nil {
		utils.ErrorResponse(c, 400, "Date is required")
		return
	}
	teacherID, _ := primitive.ObjectIDFromHex(request.Teacher)
	courseID, _ := primitive.ObjectIDFromHex(request.Course)

	ctx := c.Request.Context()

	presenter, err := guard.ResolvePresenter(ctx, h.credentials, h.profiles, credentialID)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrBrokenCredential, err)
		return
	}

	meeting, err := h.meetings.ProvisionMeetingLink(ctx, zoom.MeetingRequest{
		Topic: request.Name,
		Time:  lectureTime,
	})
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrProvisionZoom, err)
		return
	}

	lecture := models.Lecture{
		Name:          request.Name,
		Description:   request.Description,
		Teacher:       teacherID,
		Course:        courseID,
		Presenter:     presenter.ID,
		Time:          lectureTime,
		ZoomLink:      meeting.JoinLink,
		ZoomStartLink: meeting.StartLink,
		ZoomID:        meeting.MeetingID,
		ZoomResBody:   meeting.RawBody,
		Status:        true,
		UpdatedBy:     credentialID,
	}
	if err := h.lectures.Create(ctx, &lecture); err != nil {
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
