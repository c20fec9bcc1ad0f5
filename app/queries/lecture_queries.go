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

// LectureUpdate is the partial update applied by the lecture update endpoint.
type LectureUpdate struct {
	Name        string
	Time        time.Time
	Description string
	Teacher     primitive.ObjectID
	ZoomLink    string
	VimeoLink   string
}

// LectureStore reads and writes lecture documents. Every read adds the
// status=true filter: soft-deleted lectures are invisible here.
type LectureStore interface {
	GetActive(ctx context.Context, id primitive.ObjectID) (models.Lecture, error)
	// ListByCourse returns one page of a course's active lectures, newest
	// scheduled time first, plus the total count of active lectures.
	ListByCourse(ctx context.Context, courseID primitive.ObjectID, page, limit int) ([]models.Lecture, int64, error)
	Create(ctx context.Context, lecture *models.Lecture) error
	Update(ctx context.Context, id primitive.ObjectID, update LectureUpdate) (models.Lecture, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
}

type mongoLectureStore struct{}

// NewLectureStore returns the Mongo-backed lecture store.
func NewLectureStore() LectureStore {
	return mongoLectureStore{}
}

func (mongoLectureStore) GetActive(ctx context.Context, id primitive.ObjectID) (models.Lecture, error) {
	var lecture models.Lecture
	err := database.GetCollection("lectures").FindOne(ctx, activeByID(id)).Decode(&lecture)
	return lecture, err
}

func (mongoLectureStore) ListByCourse(ctx context.Context, courseID primitive.ObjectID, page, limit int) ([]models.Lecture, int64, error) {
	collection := database.GetCollection("lectures")
	filter := bson.M{"course": courseID, "status": true}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "time", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	var lectures []models.Lecture
	if err := cursor.All(ctx, &lectures); err != nil {
		return nil, 0, err
	}
	return lectures, total, nil
}

func (mongoLectureStore) Create(ctx context.Context, lecture *models.Lecture) error {
	lecture.ID = primitive.NewObjectID()
	lecture.Touch()
	_, err := database.GetCollection("lectures").InsertOne(ctx, lecture)
	return err
}

func (mongoLectureStore) Update(ctx context.Context, id primitive.ObjectID, update LectureUpdate) (models.Lecture, error) {
	set := bson.M{
		"name":        update.Name,
		"time":        update.Time,
		"description": update.Description,
		"teacher":     update.Teacher,
		"zoomLink":    update.ZoomLink,
		"vimeoLink":   update.VimeoLink,
		"updatedAt":   time.Now(),
	}
	var lecture models.Lecture
	err := database.GetCollection("lectures").
		FindOneAndUpdate(ctx, activeByID(id), bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&lecture)
	return lecture, err
}

func (mongoLectureStore) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	_, err := database.GetCollection("lectures").UpdateOne(ctx, activeByID(id),
		bson.M{"$set": bson.M{"status": false, "updatedAt": time.Now()}})
	return err
}
