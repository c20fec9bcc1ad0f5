package auth

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/pkg/encryption"
	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the password and sets the access-token cookie consumed by
// the auth middleware. Stateless: nothing is stored server-side.
func (h *Handler) Login(c *gin.Context) {
	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request")
		return
	}

	credential, err := h.credentials.GetByEmail(c.Request.Context(), request.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.ErrorResponse(c, 400, "Invalid email or password")
		return
	} else if err != nil {
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
		return
	}

	if !encryption.VerifyPassword(credential.Password, request.Password) {
		utils.ErrorResponse(c, 400, "Invalid email or password")
		return
	}

	expiresAt := time.Now().Add(time.Minute * time.Duration(utils.CookieAccessTokenExpires))
	accessToken, err := encryption.GenerateAccessToken(credential.ID, expiresAt)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrGenerateToken, err)
		return
	}

	c.SetCookie("access_token", accessToken, utils.CookieAccessTokenExpires*60, "/", "", false, false)
	c.JSON(200, gin.H{"id": credential.ID, "userType": credential.UserType, "expiresAt": expiresAt})
}
