package courses

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/guard"
	"github.com/lkuo/naf-backend/app/queries"
	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type updateCourseRequest struct {
	ID          string `json:"_id" binding:"required,objectid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageLink   string `json:"imageLink"`
}

var updateCourseMessages = map[string]string{
	"ID": "Course Id is required",
}

// UpdateCourse handles PUT /courses. Only the owning presenter may update.
func (h *Handler) UpdateCourse(c *gin.Context) {
	credentialID, err := utils.GetCredentialIDFromContext(c)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrCredentialIDNotFound, err)
		return
	}

	var request updateCourseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, utils.FirstValidationMessage(err, updateCourseMessages))
		return
	}
	courseID, _ := primitive.ObjectIDFromHex(request.ID)

	ctx := c.Request.Context()

	presenter, err := guard.VerifyOwner(ctx, h.credentials, h.profiles, credentialID, courseID, h.courseOwner)
	if err != nil {
		respondGateError(c, err)
		return
	}

	course, err := h.courses.Update(ctx, courseID, queries.CourseUpdate{
		Name:        request.Name,
		Description: request.Description,
		ImageLink:   request.ImageLink,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.ErrorResponse(c, 404, "Invalid course Id")
		return
	} else if err != nil {
		utils.ServerErrorResponse(c, utils.ErrSaveData, err)
		return
	}

	h.invalidateCourseCache(ctx, courseID)

	c.JSON(200, newCourseResponse(course, presenter))
}
