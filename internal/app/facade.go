package app

import (
	"context"

	"github.com/polkiloo/attivita/internal/domain/model"
	"github.com/polkiloo/attivita/internal/usecase"
)

// PlannerFacade aggregates authentication and activity use cases behind the
// surface consumed by the HTTP layer.
type PlannerFacade struct {
	auth       *usecase.AuthUseCase
	activities *usecase.ActivityUseCase
}

// NewPlannerFacade constructs PlannerFacade.
func NewPlannerFacade(auth *usecase.AuthUseCase, activities *usecase.ActivityUseCase) *PlannerFacade {
	return &PlannerFacade{auth: auth, activities: activities}
}

func (f *PlannerFacade) Register(ctx context.Context, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, email, password)
}

func (f *PlannerFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *PlannerFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *PlannerFacade) Activities(ctx context.Context, userID string) ([]model.Activity, error) {
	return f.activities.ListByOwner(ctx, userID)
}

func (f *PlannerFacade) CreateActivity(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	return f.activities.Create(ctx, activity)
}

func (f *PlannerFacade) UpdateActivity(ctx context.Context, id int64, activity *model.Activity) error {
	return f.activities.Update(ctx, id, activity)
}

func (f *PlannerFacade) DeleteActivity(ctx context.Context, id int64) error {
	return f.activities.Delete(ctx, id)
}

// DeleteOwnedActivity is the owner-checked delete variant. The HTTP surface
// exposes the unchecked DeleteActivity instead.
func (f *PlannerFacade) DeleteOwnedActivity(ctx context.Context, id int64, userID string) (bool, error) {
	return f.activities.DeleteOwned(ctx, id, userID)
}
