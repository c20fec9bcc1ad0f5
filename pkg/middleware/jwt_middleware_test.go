package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/pkg/encryption"
	"github.com/lkuo/naf-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func protectedRouter(seen *primitive.ObjectID) *gin.Engine {
	r := gin.New()
	r.GET("/protected", IsAuthorized(), func(c *gin.Context) {
		id, err := utils.GetCredentialIDFromContext(c)
		if err != nil {
			c.Status(500)
			return
		}
		*seen = id
		c.Status(200)
	})
	return r
}

func doProtected(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestIsAuthorized(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	credentialID := primitive.NewObjectID()
	token, err := encryption.GenerateAccessToken(credentialID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	var seen primitive.ObjectID
	rec := doProtected(protectedRouter(&seen), token)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, credentialID, seen)
}

func TestIsAuthorizedRequiresCookie(t *testing.T) {
	var seen primitive.ObjectID
	rec := doProtected(protectedRouter(&seen), "")
	assert.Equal(t, 403, rec.Code)
}

func TestIsAuthorizedRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := encryption.GenerateAccessToken(primitive.NewObjectID(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	var seen primitive.ObjectID
	rec := doProtected(protectedRouter(&seen), token)
	assert.Equal(t, 403, rec.Code)
}

func TestIsAuthorizedRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := encryption.GenerateAccessToken(primitive.NewObjectID(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	var seen primitive.ObjectID
	rec := doProtected(protectedRouter(&seen), token+"x")
	assert.Equal(t, 403, rec.Code)
}
