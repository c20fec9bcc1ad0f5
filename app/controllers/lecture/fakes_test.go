package lectures

import (
	"context"

	"github.com/lkuo/naf-backend/app/models"
	"github.com/lkuo/naf-backend/app/queries"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeLectureStore struct {
	lectures map[primitive.ObjectID]models.Lecture
	reads    int
}

func newFakeLectureStore() *fakeLectureStore {
	return &fakeLectureStore{lectures: make(map[primitive.ObjectID]models.Lecture)}
}

func (f *fakeLectureStore) GetActive(ctx context.Context, id primitive.ObjectID) (models.Lecture, error) {
	f.reads++
	lecture, ok := f.lectures[id]
	if !ok || !lecture.Status {
		return models.Lecture{}, mongo.ErrNoDocuments
	}
	return lecture, nil
}

func (f *fakeLectureStore) ListByCourse(ctx context.Context, courseID primitive.ObjectID, page, limit int) ([]models.Lecture, int64, error) {
	return nil, 0, nil
}

func (f *fakeLectureStore) Create(ctx context.Context, lecture *models.Lecture) error {
	lecture.ID = primitive.NewObjectID()
	lecture.Touch()
	f.lectures[lecture.ID] = *lecture
	return nil
}

func (f *fakeLectureStore) Update(ctx context.Context, id primitive.ObjectID, update queries.LectureUpdate) (models.Lecture, error) {
	lecture, ok := f.lectures[id]
	if !ok || !lecture.Status {
		return models.Lecture{}, mongo.ErrNoDocuments
	}
	lecture.Name = update.Name
	lecture.Time = update.Time
	lecture.Description = update.Description
	lecture.Teacher = update.Teacher
	lecture.ZoomLink = update.ZoomLink
	lecture.VimeoLink = update.VimeoLink
	lecture.Touch()
	f.lectures[id] = lecture
	return lecture, nil
}

func (f *fakeLectureStore) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	if lecture, ok := f.lectures[id]; ok && lecture.Status {
		lecture.Status = false
		f.lectures[id] = lecture
	}
	return nil
}

type fakeCredentialStore struct {
	credentials map[primitive.ObjectID]models.Credential
}

func (f *fakeCredentialStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Credential, error) {
	credential, ok := f.credentials[id]
	if !ok {
		return models.Credential{}, mongo.ErrNoDocuments
	}
	return credential, nil
}

func (f *fakeCredentialStore) GetByEmail(ctx context.Context, email string) (models.Credential, error) {
	for _, credential := range f.credentials {
		if credential.Email == email {
			return credential, nil
		}
	}
	return models.Credential{}, mongo.ErrNoDocuments
}

func (f *fakeCredentialStore) Create(ctx context.Context, credential models.Credential) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	credential.ID = id
	f.credentials[id] = credential
	return id, nil
}

type fakeProfileStore struct {
	presenters map[primitive.ObjectID]models.Presenter
	teachers   map[primitive.ObjectID]models.Teacher
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		presenters: make(map[primitive.ObjectID]models.Presenter),
		teachers:   make(map[primitive.ObjectID]models.Teacher),
	}
}

func (f *fakeProfileStore) GetPresenter(ctx context.Context, id primitive.ObjectID) (models.Presenter, error) {
	presenter, ok := f.presenters[id]
	if !ok {
		return models.Presenter{}, mongo.ErrNoDocuments
	}
	return presenter, nil
}

func (f *fakeProfileStore) GetTeacher(ctx context.Context, id primitive.ObjectID) (models.Teacher, error) {
	teacher, ok := f.teachers[id]
	if !ok {
		return models.Teacher{}, mongo.ErrNoDocuments
	}
	return teacher, nil
}

func (f *fakeProfileStore) GetTeachersByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Teacher, error) {
	result := make(map[primitive.ObjectID]models.Teacher, len(ids))
	for _, id := range ids {
		if teacher, ok := f.teachers[id]; ok {
			result[id] = teacher
		}
	}
	return result, nil
}

func (f *fakeProfileStore) CreatePresenter(ctx context.Context, presenter models.Presenter) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	presenter.ID = id
	f.presenters[id] = presenter
	return id, nil
}

func (f *fakeProfileStore) CreateTeacher(ctx context.Context, teacher models.Teacher) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	teacher.ID = id
	f.teachers[id] = teacher
	return id, nil
}

func (f *fakeProfileStore) CreateAttendee(ctx context.Context, attendee models.Attendee) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	attendee.ID = id
	return id, nil
}
