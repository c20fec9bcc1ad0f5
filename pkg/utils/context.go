package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContextCredentialID is the context key set by the auth middleware.
const ContextCredentialID = "credentialID"

// GetCredentialIDFromContext reads the authenticated caller's credential id.
// Handlers call this once and pass the id down explicitly.
func GetCredentialIDFromContext(c *gin.Context) (primitive.ObjectID, error) {
	value, exists := c.Get(ContextCredentialID)
	if !exists {
		return primitive.NilObjectID, fmt.Errorf("credentialID not found in context")
	}
	id, ok := value.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("credentialID has unexpected type %T", value)
	}
	return id, nil
}
