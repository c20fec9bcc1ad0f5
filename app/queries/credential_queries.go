package queries

import (
	"context"

	"github.com/lkuo/naf-backend/app/models"
	"github.com/lkuo/naf-backend/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CredentialStore reads and writes login identity records.
type CredentialStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Credential, error)
	GetByEmail(ctx context.Context, email string) (models.Credential, error)
	Create(ctx context.Context, credential models.Credential) (primitive.ObjectID, error)
}

// ProfileStore reads and writes the presenter/teacher/attendee profile
// records credentials link to.
type ProfileStore interface {
	GetPresenter(ctx context.Context, id primitive.ObjectID) (models.Presenter, error)
	GetTeacher(ctx context.Context, id primitive.ObjectID) (models.Teacher, error)
	GetTeachersByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Teacher, error)
	CreatePresenter(ctx context.Context, presenter models.Presenter) (primitive.ObjectID, error)
	CreateTeacher(ctx context.Context, teacher models.Teacher) (primitive.ObjectID, error)
	CreateAttendee(ctx context.Context, attendee models.Attendee) (primitive.ObjectID, error)
}

type mongoCredentialStore struct{}

// NewCredentialStore returns the Mongo-backed credential store.
func NewCredentialStore() CredentialStore {
	return mongoCredentialStore{}
}

func (mongoCredentialStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Credential, error) {
	var credential models.Credential
	err := database.GetCollection("credentials").FindOne(ctx, bson.M{"_id": id}).Decode(&credential)
	return credential, err
}

func (mongoCredentialStore) GetByEmail(ctx context.Context, email string) (models.Credential, error) {
	var credential models.Credential
	err := database.GetCollection("credentials").FindOne(ctx, bson.M{"email": email}).Decode(&credential)
	return credential, err
}

func (mongoCredentialStore) Create(ctx context.Context, credential models.Credential) (primitive.ObjectID, error) {
	result, err := database.GetCollection("credentials").InsertOne(ctx, credential)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

type mongoProfileStore struct{}

// NewProfileStore returns the Mongo-backed profile store.
func NewProfileStore() ProfileStore {
	return mongoProfileStore{}
}

func (mongoProfileStore) GetPresenter(ctx context.Context, id primitive.ObjectID) (models.Presenter, error) {
	var presenter models.Presenter
	err := database.GetCollection("presenters").FindOne(ctx, bson.M{"_id": id}).Decode(&presenter)
	return presenter, err
}

func (mongoProfileStore) GetTeacher(ctx context.Context, id primitive.ObjectID) (models.Teacher, error) {
	var teacher models.Teacher
	err := database.GetCollection("teachers").FindOne(ctx, bson.M{"_id": id}).Decode(&teacher)
	return teacher, err
}

// GetTeachersByIDs batches the teacher join for lecture listings.
func (mongoProfileStore) GetTeachersByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Teacher, error) {
	teachers := make(map[primitive.ObjectID]models.Teacher, len(ids))
	if len(ids) == 0 {
		return teachers, nil
	}
	cursor, err := database.GetCollection("teachers").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var records []models.Teacher
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	for _, teacher := range records {
		teachers[teacher.ID] = teacher
	}
	return teachers, nil
}

func (mongoProfileStore) CreatePresenter(ctx context.Context, presenter models.Presenter) (primitive.ObjectID, error) {
	result, err := database.GetCollection("presenters").InsertOne(ctx, presenter)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (mongoProfileStore) CreateTeacher(ctx context.Context, teacher models.Teacher) (primitive.ObjectID, error) {
	result, err := database.GetCollection("teachers").InsertOne(ctx, teacher)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (mongoProfileStore) CreateAttendee(ctx context.Context, attendee models.Attendee) (primitive.ObjectID, error) {
	result, err := database.GetCollection("attendees").InsertOne(ctx, attendee)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}
