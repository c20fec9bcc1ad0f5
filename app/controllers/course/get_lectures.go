package courses

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type teacherInfo struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

type lectureListItem struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Time        time.Time          `json:"time"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	ImageLink   string             `json:"imageLink"`
	Teacher     teacherInfo        `json:"teacher"`
}

type lectureListResponse struct {
	Object      string            `json:"object"`
	HasNext     bool              `json:"hasNext"`
	Data        []lectureListItem `json:"data"`
	CurrentPage int               `json:"currentPage"`
	Limit       int               `json:"limit"`
	PageCount   int               `json:"pageCount"`
}

// GetLectures handles GET /courses/:courseId/lectures. Active lectures of
// the course, newest scheduled time first, paginated with teacher joined.
func (h *Handler) GetLectures(c *gin.Context) {
	courseID, err := primitive.ObjectIDFromHex(c.Param("courseId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Course Id is requested")
		return
	}

	page := utils.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit := utils.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = utils.PaginationLimit
	}

	ctx := c.Request.Context()

	lectures, total, err := h.lectures.ListByCourse(ctx, courseID, page, limit)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
		return
	}

	teacherIDs := make([]primitive.ObjectID, 0, len(lectures))
	seen := make(map[primitive.ObjectID]bool, len(lectures))
	for _, lecture := range lectures {
		if !seen[lecture.Teacher] {
			seen[lecture.Teacher] = true
			teacherIDs = append(teacherIDs, lecture.Teacher)
		}
	}
	teachers, err := h.profiles.GetTeachersByIDs(ctx, teacherIDs)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
		return
	}

	data := make([]lectureListItem, 0, len(lectures))
	for _, lecture := range lectures {
		teacher := teachers[lecture.Teacher]
		data = append(data, lectureListItem{
			ID:          lecture.ID,
			Name:        lecture.Name,
			Description: lecture.Description,
			Time:        lecture.Time,
			UpdatedAt:   lecture.UpdatedAt,
			ImageLink:   lecture.ImageLink,
			Teacher:     teacherInfo{ID: teacher.ID, Name: teacher.Name},
		})
	}

	pageCount := utils.PageCount(total, limit)
	c.JSON(200, lectureListResponse{
		Object:      "list",
		HasNext:     utils.HasNextPage(page, pageCount),
		Data:        data,
		CurrentPage: page,
		Limit:       limit,
		PageCount:   pageCount,
	})
}
