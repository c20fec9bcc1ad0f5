package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lecture type / document. A lecture always belongs to exactly one course
// and one owning presenter.
type Lecture struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	Teacher       primitive.ObjectID `json:"teacher" bson:"teacher"`
	Course        primitive.ObjectID `json:"course" bson:"course"`
	Presenter     primitive.ObjectID `json:"presenter" bson:"presenter"`
	Time          time.Time          `json:"time" bson:"time"`
	VimeoLink     string             `json:"vimeoLink" bson:"vimeoLink"`
	ZoomLink      string             `json:"zoomLink" bson:"zoomLink"`
	ZoomStartLink string             `json:"zoomStartLink" bson:"zoomStartLink"`
	ZoomID        string             `json:"zoomId" bson:"zoomId"`
	ZoomResBody   string             `json:"zoomResBody" bson:"zoomResBody"`
	ImageLink     string             `json:"imageLink" bson:"imageLink"`
	Status        bool               `json:"status" bson:"status"` // false = soft-deleted
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy     primitive.ObjectID `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

// Touch stamps the audit fields before a save, createdAt only once.
func (lecture *Lecture) Touch() {
	now := time.Now()
	lecture.UpdatedAt = now
	if lecture.CreatedAt.IsZero() {
		lecture.CreatedAt = now
	}
}
