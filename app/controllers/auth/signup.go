package auth

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lkuo/naf-backend/app/models"
	"github.com/lkuo/naf-backend/app/queries"
	"github.com/lkuo/naf-backend/pkg/encryption"
	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handler handles registration and login.
type Handler struct {
	credentials queries.CredentialStore
	profiles    queries.ProfileStore
}

// NewHandler creates an auth handler.
func NewHandler(credentials queries.CredentialStore, profiles queries.ProfileStore) *Handler {
	return &Handler{credentials: credentials, profiles: profiles}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Name     string `json:"name" binding:"required,max=64"`
	UserType string `json:"userType" binding:"required,oneof=attendee presenter teacher"`
}

// Signup registers a credential and its one profile record. Identity
// fields are immutable afterwards; the profile link is set exactly once.
func (h *Handler) Signup(c *gin.Context) {
	var request signupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request")
		return
	}

	ctx := c.Request.Context()

	// Check if email already been used
	_, err := h.credentials.GetByEmail(ctx, request.Email)
	if err == nil {
		utils.ErrorResponse(c, 400, "Email is registered")
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		utils.ServerErrorResponse(c, utils.ErrGetData, err)
		return
	}

	hashedPassword, err := encryption.HashPassword(request.Password)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrHashData, err)
		return
	}

	now := time.Now()
	credential := models.Credential{
		Email:     request.Email,
		Password:  hashedPassword,
		UserType:  models.UserType(request.UserType),
		CreatedAt: now,
		UpdatedAt: now,
	}

	profileID, err := h.createProfile(c, credential.UserType, request.Name, now)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrSaveData, err)
		return
	}
	switch credential.UserType {
	case models.UserTypeAttendee:
		credential.Attendee = &profileID
	case models.UserTypePresenter:
		credential.Presenter = &profileID
	case models.UserTypeTeacher:
		credential.Teacher = &profileID
	}

	credentialID, err := h.credentials.Create(ctx, credential)
	if err != nil {
		utils.ServerErrorResponse(c, utils.ErrSaveData, err)
		return
	}

	c.JSON(200, gin.H{"id": credentialID, "email": credential.Email, "userType": credential.UserType})
}

func (h *Handler) createProfile(c *gin.Context, userType models.UserType, name string, now time.Time) (primitive.ObjectID, error) {
	ctx := c.Request.Context()
	switch userType {
	case models.UserTypePresenter:
		return h.profiles.CreatePresenter(ctx, models.Presenter{Name: name, CreatedAt: now, UpdatedAt: now})
	case models.UserTypeTeacher:
		return h.profiles.CreateTeacher(ctx, models.Teacher{Name: name, CreatedAt: now, UpdatedAt: now})
	default:
		return h.profiles.CreateAttendee(ctx, models.Attendee{Name: name, CreatedAt: now, UpdatedAt: now})
	}
}
