package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/pkg/encryption"
	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsAuthorized validates the access-token cookie and stores the caller's
// credential id in the request context.
func IsAuthorized() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie("access_token")
		if err != nil || cookie.Value == "" {
			utils.ErrorResponse(c, 403, "Authorization token is empty.")
			c.Abort()
			return
		}

		claims, err := encryption.ParseAccessToken(cookie.Value)
		if err != nil {
			utils.ErrorResponse(c, 403, "Unauthorized")
			c.Abort()
			return
		}

		expiresAtFloat, ok := claims["expires"].(float64)
		if !ok {
			utils.ErrorResponse(c, 403, "Invalid expires datatype")
			c.Abort()
			return
		}
		if time.Now().Unix() >= int64(expiresAtFloat) {
			utils.ErrorResponse(c, 403, "Token expired")
			c.Abort()
			return
		}

		subject, ok := claims["sub"].(string)
		if !ok {
			utils.ErrorResponse(c, 403, "Unauthorized")
			c.Abort()
			return
		}
		credentialID, err := primitive.ObjectIDFromHex(subject)
		if err != nil {
			utils.ErrorResponse(c, 403, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(utils.ContextCredentialID, credentialID)
		c.Next()
	}
}
