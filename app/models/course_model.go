package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course type / document
type Course struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Presenter   primitive.ObjectID `json:"presenter" bson:"presenter"`
	ImageLink   string             `json:"imageLink" bson:"imageLink"`
	Status      bool               `json:"status" bson:"status"` // false = soft-deleted
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy   primitive.ObjectID `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

// Touch stamps the audit fields before a save, createdAt only once.
func (course *Course) Touch() {
	now := time.Now()
	course.UpdatedAt = now
	if course.CreatedAt.IsZero() {
		course.CreatedAt = now
	}
}
