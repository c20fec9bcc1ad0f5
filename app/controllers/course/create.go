package courses

import (
	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/guard"
	"github.com/lkuo/naf-backend/app/models"
	"github.com/lkuo/naf-backend/pkg/utils"
)

// createCourseRequest is the request body for creating a new course. The
// owning presenter always comes from the caller's credential, never from
// the body.
type createCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageLink   string `json:"imageLink"`
}

var createCourseMessages = map[string]string{
	"Name": "Course name is required",
}

// CreateCourse handles POST /courses.
func (h *Handler) CreateCourse(c *gin.Context) {
	credentialID, err := utils.GetCredentialIDFromContext(c)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrCredentialIDNotFound, err)
		return
	}

	var request createCourseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, utils.FirstValidationMessage(err, createCourseMessages))
		return
	}

	ctx := c.Request.Context()

	presenter, err := guard.ResolvePresenter(ctx, h.credentials, h.profiles, credentialID)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrBrokenCredential, err)
		return
	}

	course := models.Course{
		Name:        request.Name,
		Description: request.Description,
		ImageLink:   request.ImageLink,
		Presenter:   presenter.ID,
		Status:      true,
		UpdatedBy:   credentialID,
	}
	if err := h.courses.Create(ctx, &course); err != nil {
		utils.ServerErrorResponse(c, utils.ErrSaveData, err)
		return
	}

	c.JSON(200, newCourseResponse(course, presenter))
}
