// Package guard implements the ownership gate shared by every mutating
// course and lecture operation: the caller's credential must resolve to a
// presenter, and that presenter must own the target record.
package guard

import (
	"context"
	"errors"

	"github.com/lkuo/naf-backend/app/models"
	"github.com/lkuo/naf-backend/app/queries"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNotOwner means the record exists but belongs to another presenter.
	ErrNotOwner = errors.New("caller does not own the record")
	// ErrRecordNotFound means the target record is absent or soft-deleted.
	ErrRecordNotFound = errors.New("record not found")
	// ErrBrokenCredential means the caller's credential is missing or has no
	// presenter link. A system integrity failure, not a user error.
	ErrBrokenCredential = errors.New("credential has no presenter link")
)

// OwnerLoader loads the owning presenter id of the target record.
// Implementations read through the active filter, so soft-deleted records
// report ErrRecordNotFound.
type OwnerLoader func(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, error)

// ResolvePresenter follows the caller's credential to its presenter profile.
func ResolvePresenter(ctx context.Context, credentials queries.CredentialStore, profiles queries.ProfileStore, credentialID primitive.ObjectID) (models.Presenter, error) {
	credential, err := credentials.GetByID(ctx, credentialID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Presenter{}, ErrBrokenCredential
		}
		return models.Presenter{}, err
	}
	if credential.Presenter == nil {
		return models.Presenter{}, ErrBrokenCredential
	}
	presenter, err := profiles.GetPresenter(ctx, *credential.Presenter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Presenter{}, ErrBrokenCredential
		}
		return models.Presenter{}, err
	}
	return presenter, nil
}

// VerifyOwner resolves the caller's presenter and the target record's owner
// concurrently, then compares them. Both lookups complete before the
// comparison; their order does not matter.
func VerifyOwner(ctx context.Context, credentials queries.CredentialStore, profiles queries.ProfileStore, credentialID, recordID primitive.ObjectID, loadOwner OwnerLoader) (models.Presenter, error) {
	var (
		presenter models.Presenter
		owner     primitive.ObjectID
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		presenter, err = ResolvePresenter(groupCtx, credentials, profiles, credentialID)
		return err
	})
	group.Go(func() error {
		var err error
		owner, err = loadOwner(groupCtx, recordID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrRecordNotFound
		}
		return err
	})
	if err := group.Wait(); err != nil {
		return models.Presenter{}, err
	}

	if owner != presenter.ID {
		return models.Presenter{}, ErrNotOwner
	}
	return presenter, nil
}
