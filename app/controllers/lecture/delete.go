package lectures

import (
	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/guard"
	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type deleteLectureRequest struct {
	ID string `json:"_id" binding:"required,objectid"`
}

var deleteLectureMessages = map[string]string{
	"ID": "Lecture Id is required",
}

// DeleteLecture handles DELETE /lectures. Soft delete only.
func (h *Handler) DeleteLecture(c *gin.Context) {
	credentialID, err := utils.GetCredentialIDFromContext(c)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrCredentialIDNotFound, err)
		return
	}

	var request deleteLectureRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, utils.FirstValidationMessage(err, deleteLectureMessages))
		return
	}
	lectureID, _ := primitive.ObjectIDFromHex(request.ID)

	ctx := c.Request.Context()

	if _, err := guard.VerifyOwner(ctx, h.credentials, h.profiles, credentialID, lectureID, h.lectureOwner); err != nil {
		respondGateError(c, err)
		return
	}

	if err := h.lectures.SoftDelete(ctx, lectureID); err != nil {
		utils.ServerErrorResponse(c, utils.ErrSaveData, err)
		return
	}

	c.JSON(200, gin.H{"id": lectureID})
}
