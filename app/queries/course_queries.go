package queries

import (
	"context"
	"time"

	"github.com/lkuo/naf-backend/app/models"
	"github.com/lkuo/naf-backend/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CourseUpdate is the partial update applied by the course update endpoint.
type CourseUpdate struct {
	Name        string
	Description string
	ImageLink   string
}

// CourseStore reads and writes course documents. Every read adds the
// status=true filter: soft-deleted courses are invisible here.
type CourseStore interface {
	GetActive(ctx context.Context, id primitive.ObjectID) (models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, id primitive.ObjectID, update CourseUpdate) (models.Course, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	SetImageLink(ctx context.Context, id primitive.ObjectID, imageLink string) error
}

type mongoCourseStore struct{}

// NewCourseStore returns the Mongo-backed course store.
func NewCourseStore() CourseStore {
	return mongoCourseStore{}
}

func activeByID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "status": true}
}

func (mongoCourseStore) GetActive(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var course models.Course
	err := database.GetCollection("courses").FindOne(ctx, activeByID(id)).Decode(&course)
	return course, err
}

func (mongoCourseStore) Create(ctx context.Context, course *models.Course) error {
	course.ID = primitive.NewObjectID()
	course.Touch()
	_, err := database.GetCollection("courses").InsertOne(ctx, course)
	return err
}

func (mongoCourseStore) Update(ctx context.Context, id primitive.ObjectID, update CourseUpdate) (models.Course, error) {
	set := bson.M{
		"name":        update.Name,
		"description": update.Description,
		"imageLink":   update.ImageLink,
		"updatedAt":   time.Now(),
	}
	var course models.Course
	err := database.GetCollection("courses").
		FindOneAndUpdate(ctx, activeByID(id), bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&course)
	return course, err
}

func (mongoCourseStore) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	_, err := database.GetCollection("courses").UpdateOne(ctx, activeByID(id),
		bson.M{"$set": bson.M{"status": false, "updatedAt": time.Now()}})
	return err
}

func (mongoCourseStore) SetImageLink(ctx context.Context, id primitive.ObjectID, imageLink string) error {
	_, err := database.GetCollection("courses").UpdateOne(ctx, activeByID(id),
		bson.M{"$set": bson.M{"imageLink": imageLink, "updatedAt": time.Now()}})
	return err
}
