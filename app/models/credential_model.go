package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserType discriminates which profile link a credential carries.
type UserType string

const (
	UserTypeAttendee  UserType = "attendee"
	UserTypePresenter UserType = "presenter"
	UserTypeTeacher   UserType = "teacher"
)

// Credential is the login identity record. Exactly one of Attendee,
// Presenter or Teacher is set, matching UserType.
type Credential struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Email     string              `json:"email" bson:"email"` // Unique
	Password  string              `json:"-" bson:"password"`  // Hashed password
	UserType  UserType            `json:"userType" bson:"userType"`
	Attendee  *primitive.ObjectID `json:"attendee,omitempty" bson:"attendee,omitempty"`
	Presenter *primitive.ObjectID `json:"presenter,omitempty" bson:"presenter,omitempty"`
	Teacher   *primitive.ObjectID `json:"teacher,omitempty" bson:"teacher,omitempty"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy primitive.ObjectID  `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

// ProfileID returns the profile link matching UserType.
func (cr Credential) ProfileID() *primitive.ObjectID {
	switch cr.UserType {
	case UserTypeAttendee:
		return cr.Attendee
	case UserTypePresenter:
		return cr.Presenter
	case UserTypeTeacher:
		return cr.Teacher
	}
	return nil
}
