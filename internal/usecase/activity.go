package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/attivita/internal/domain/errors"
	"github.com/polkiloo/attivita/internal/domain/model"
	"github.com/polkiloo/attivita/internal/domain/repository"
)

// ActivityUseCase encapsulates activity lifecycle logic.
type ActivityUseCase struct {
	activities repository.ActivityRepository
	users      repository.UserRepository
}

// NewActivityUseCase constructs ActivityUseCase.
func NewActivityUseCase(activities repository.ActivityRepository, users repository.UserRepository) *ActivityUseCase {
	return &ActivityUseCase{activities: activities, users: users}
}

// ListByOwner returns all activities owned by the given user, in storage order.
func (u *ActivityUseCase) ListByOwner(ctx context.Context, userID string) ([]model.Activity, error) {
	return u.activities.ListByUser(ctx, userID)
}

// Create persists a new activity after verifying the declared owner exists.
// The owner is taken from the activity itself, not from the caller.
func (u *ActivityUseCase) Create(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	if activity.UserID == "" {
		return nil, domainErrors.ErrInvalidOwner
	}

	exists, err := u.users.Exists(ctx, activity.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainErrors.ErrInvalidOwner
	}

	return u.activities.Create(ctx, activity)
}

// Update replaces all mutable fields of the activity identified by id. The
// path and body identifiers must agree; the mismatch is reported before any
// storage access. Lookup is by identifier alone, not scoped to an owner.
func (u *ActivityUseCase) Update(ctx context.Context, id int64, activity *model.Activity) error {
	if id != activity.ID {
		return domainErrors.ErrIDMismatch
	}

	existing, err := u.activities.GetByID(ctx, id)
	if err != nil {
		return err
	}

	existing.Title = activity.Title
	existing.Description = activity.Description
	existing.Due = activity.Due
	existing.Status = activity.Status
	existing.UserID = activity.UserID

	return u.activities.Update(ctx, existing)
}

// Delete removes the activity with the given identifier, whoever owns it.
func (u *ActivityUseCase) Delete(ctx context.Context, id int64) error {
	return u.activities.Delete(ctx, id)
}

// DeleteOwned removes the activity only when both identifier and owner match,
// reporting the outcome instead of failing on a miss.
func (u *ActivityUseCase) DeleteOwned(ctx context.Context, id int64, userID string) (bool, error) {
	return u.activities.DeleteOwned(ctx, id, userID)
}
