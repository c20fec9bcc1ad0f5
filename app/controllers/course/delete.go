package courses

import (
	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/guard"
	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type deleteCourseRequest struct {
	ID string `json:"_id" binding:"required,objectid"`
}

var deleteCourseMessages = map[string]string{
	"ID": "Course Id is required",
}

// DeleteCourse handles DELETE /courses. Soft delete: the record stays in
// storage with status=false and disappears from every public read.
func (h *Handler) DeleteCourse(c *gin.Context) {
	credentialID, err := utils.GetCredentialIDFromContext(c)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrCredentialIDNotFound, err)
		return
	}

	var request deleteCourseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, utils.FirstValidationMessage(err, deleteCourseMessages))
		return
	}
	courseID, _ := primitive.ObjectIDFromHex(request.ID)

	ctx := c.Request.Context()

	if _, err := guard.VerifyOwner(ctx, h.credentials, h.profiles, credentialID, courseID, h.courseOwner); err != nil {
		respondGateError(c, err)
		return
	}

	if err := h.courses.SoftDelete(ctx, courseID); err != nil {
		utils.ServerErrorResponse(c, utils.ErrSaveData, err)
		return
	}

	h.invalidateCourseCache(ctx, courseID)

	c.JSON(200, gin.H{"id": courseID})
}
