package lectures

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/guard"
	"github.com/lkuo/naf-backend/app/models"
	"github.com/lkuo/naf-backend/app/queries"
	"github.com/lkuo/naf-backend/pkg/utils"
	"github.com/lkuo/naf-backend/pkg/zoom"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handler handles lecture HTTP endpoints. Listing lectures lives on the
// course handler since lectures are always listed per course.
type Handler struct {
	lectures    queries.LectureStore
	credentials queries.CredentialStore
	profiles    queries.ProfileStore
	meetings    zoom.Provisioner
}

// NewHandler creates a lecture handler.
func NewHandler(lectures queries.LectureStore, credentials queries.CredentialStore, profiles queries.ProfileStore, meetings zoom.Provisioner) *Handler {
	return &Handler{
		lectures:    lectures,
		credentials: credentials,
		profiles:    profiles,
		meetings:    meetings,
	}
}

type presenterInfo struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

type teacherInfo struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

type lectureResponse struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Time        time.Time          `json:"time"`
	Description string             `json:"description"`
	Presenter   presenterInfo      `json:"presenter"`
	Teacher     teacherInfo        `json:"teacher"`
	ZoomLink    string             `json:"zoomLink"`
	VimeoLink   string             `json:"vimeoLink"`
}

func newLectureResponse(lecture models.Lecture, presenter models.Presenter, teacher models.Teacher) lectureResponse {
	return lectureResponse{
		ID:          lecture.ID,
		Name:        lecture.Name,
		Time:        lecture.Time,
		Description: lecture.Description,
		Presenter:   presenterInfo{ID: presenter.ID, Name: presenter.Name},
		Teacher:     teacherInfo{ID: teacher.ID, Name: teacher.Name},
		ZoomLink:    lecture.ZoomLink,
		VimeoLink:   lecture.VimeoLink,
	}
}

// lectureOwner is the gate loader for lecture mutations.
func (h *Handler) lectureOwner(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, error) {
	lecture, err := h.lectures.GetActive(ctx, id)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return lecture.Presenter, nil
}

func respondGateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, guard.ErrNotOwner):
		utils.ErrorResponse(c, 401, "Invalid user Id")
	case errors.Is(err, guard.ErrRecordNotFound):
		utils.ErrorResponse(c, 404, "Invalid lecture Id")
	default:
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
	}
}

// parseLectureTime accepts RFC3339 or a bare date.
func parseLectureTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
