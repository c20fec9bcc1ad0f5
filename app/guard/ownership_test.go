package guard

import (
	"context"
	"testing"

	"github.com/lkuo/naf-backend/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeCredentialStore struct {
	credentials map[primitive.ObjectID]models.Credential
}

func (f fakeCredentialStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Credential, error) {
	credential, ok := f.credentials[id]
	if !ok {
		return models.Credential{}, mongo.ErrNoDocuments
	}
	return credential, nil
}

func (f fakeCredentialStore) GetByEmail(ctx context.Context, email string) (models.Credential, error) {
	return models.Credential{}, mongo.ErrNoDocuments
}

func (f fakeCredentialStore) Create(ctx context.Context, credential models.Credential) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

type fakeProfileStore struct {
	presenters map[primitive.ObjectID]models.Presenter
}

func (f fakeProfileStore) GetPresenter(ctx context.Context, id primitive.ObjectID) (models.Presenter, error) {
	presenter, ok := f.presenters[id]
	if !ok {
		return models.Presenter{}, mongo.ErrNoDocuments
	}
	return presenter, nil
}

func (f fakeProfileStore) GetTeacher(ctx context.Context, id primitive.ObjectID) (models.Teacher, error) {
	return models.Teacher{}, mongo.ErrNoDocuments
}

func (f fakeProfileStore) GetTeachersByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Teacher, error) {
	return map[primitive.ObjectID]models.Teacher{}, nil
}

func (f fakeProfileStore) CreatePresenter(ctx context.Context, presenter models.Presenter) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (f fakeProfileStore) CreateTeacher(ctx context.Context, teacher models.Teacher) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (f fakeProfileStore) CreateAttendee(ctx context.Context, attendee models.Attendee) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func newCallerFixture() (fakeCredentialStore, fakeProfileStore, primitive.ObjectID, models.Presenter) {
	presenter := models.Presenter{ID: primitive.NewObjectID(), Name: "Ada"}
	credentialID := primitive.NewObjectID()
	credentials := fakeCredentialStore{credentials: map[primitive.ObjectID]models.Credential{
		credentialID: {
			ID:        credentialID,
			UserType:  models.UserTypePresenter,
			Presenter: &presenter.ID,
		},
	}}
	profiles := fakeProfileStore{presenters: map[primitive.ObjectID]models.Presenter{
		presenter.ID: presenter,
	}}
	return credentials, profiles, credentialID, presenter
}

func ownerLoader(owner primitive.ObjectID, err error) OwnerLoader {
	return func(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, error) {
		return owner, err
	}
}

func TestVerifyOwnerAllowsOwner(t *testing.T) {
	credentials, profiles, credentialID, presenter := newCallerFixture()

	got, err := VerifyOwner(context.Background(), credentials, profiles, credentialID, primitive.NewObjectID(), ownerLoader(presenter.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, presenter.ID, got.ID)
	assert.Equal(t, "Ada", got.Name)
}

func TestVerifyOwnerRejectsForeignOwner(t *testing.T) {
	credentials, profiles, credentialID, _ := newCallerFixture()

	_, err := VerifyOwner(context.Background(), credentials, profiles, credentialID, primitive.NewObjectID(), ownerLoader(primitive.NewObjectID(), nil))
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestVerifyOwnerMissingRecord(t *testing.T) {
	credentials, profiles, credentialID, _ := newCallerFixture()

	_, err := VerifyOwner(context.Background(), credentials, profiles, credentialID, primitive.NewObjectID(), ownerLoader(primitive.NilObjectID, mongo.ErrNoDocuments))
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestVerifyOwnerMissingCredential(t *testing.T) {
	_, profiles, _, presenter := newCallerFixture()
	credentials := fakeCredentialStore{credentials: map[primitive.ObjectID]models.Credential{}}

	_, err := VerifyOwner(context.Background(), credentials, profiles, primitive.NewObjectID(), primitive.NewObjectID(), ownerLoader(presenter.ID, nil))
	assert.ErrorIs(t, err, ErrBrokenCredential)
}

func TestResolvePresenterWithoutLink(t *testing.T) {
	credentialID := primitive.NewObjectID()
	credentials := fakeCredentialStore{credentials: map[primitive.ObjectID]models.Credential{
		credentialID: {ID: credentialID, UserType: models.UserTypeTeacher},
	}}
	profiles := fakeProfileStore{presenters: map[primitive.ObjectID]models.Presenter{}}

	_, err := ResolvePresenter(context.Background(), credentials, profiles, credentialID)
	assert.ErrorIs(t, err, ErrBrokenCredential)
}

func TestResolvePresenterDanglingProfile(t *testing.T) {
	presenterID := primitive.NewObjectID()
	credentialID := primitive.NewObjectID()
	credentials := fakeCredentialStore{credentials: map[primitive.ObjectID]models.Credential{
		credentialID: {ID: credentialID, UserType: models.UserTypePresenter, Presenter: &presenterID},
	}}
	profiles := fakeProfileStore{presenters: map[primitive.ObjectID]models.Presenter{}}

	_, err := ResolvePresenter(context.Background(), credentials, profiles, credentialID)
	assert.ErrorIs(t, err, ErrBrokenCredential)
}
