package courses

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/guard"
	"github.com/lkuo/naf-backend/app/models"
	"github.com/lkuo/naf-backend/app/queries"
	store "github.com/lkuo/naf-backend/pkg/s3"
	"github.com/lkuo/naf-backend/pkg/utils"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const courseCacheTTL = 5 * time.Minute

// Handler handles course HTTP endpoints.
type Handler struct {
	courses     queries.CourseStore
	lectures    queries.LectureStore
	credentials queries.CredentialStore
	profiles    queries.ProfileStore
	uploader    store.Uploader
	cache       *redis.Client // nil disables the course detail cache
}

// NewHandler creates a course handler.
func NewHandler(courses queries.CourseStore, lectures queries.LectureStore, credentials queries.CredentialStore, profiles queries.ProfileStore, uploader store.Uploader, cache *redis.Client) *Handler {
	return &Handler{
		courses:     courses,
		lectures:    lectures,
		credentials: credentials,
		profiles:    profiles,
		uploader:    uploader,
		cache:       cache,
	}
}

type presenterInfo struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

type courseResponse struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Presenter   presenterInfo      `json:"presenter"`
	Description string             `json:"description"`
	ImageLink   string             `json:"imageLink"`
}

func newCourseResponse(course models.Course, presenter models.Presenter) courseResponse {
	return courseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Presenter:   presenterInfo{ID: presenter.ID, Name: presenter.Name},
		Description: course.Description,
		ImageLink:   course.ImageLink,
	}
}

// courseOwner is the gate loader for course mutations. Reads through the
// active filter, so soft-deleted courses gate as not found.
func (h *Handler) courseOwner(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, error) {
	course, err := h.courses.GetActive(ctx, id)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return course.Presenter, nil
}

func respondGateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, guard.ErrNotOwner):
		utils.ErrorResponse(c, 401, "Invalid user Id")
	case errors.Is(err, guard.ErrRecordNotFound):
		utils.ErrorResponse(c, 404, "Invalid course Id")
	default:
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
	}
}

func courseCacheKey(id primitive.ObjectID) string {
	return "course:" + id.Hex()
}

func (h *Handler) invalidateCourseCache(ctx context.Context, id primitive.ObjectID) {
	if h.cache != nil {
		h.cache.Del(ctx, courseCacheKey(id))
	}
}
