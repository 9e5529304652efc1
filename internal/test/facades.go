package test

import (
	"context"

	"github.com/polkiloo/attivita/internal/domain/model"
)

// ActivityFacadeStub provides controllable behaviour for activity endpoints.
type ActivityFacadeStub struct {
	ActivitiesFn  func(context.Context, string) ([]model.Activity, error)
	CreateFn      func(context.Context, *model.Activity) (*model.Activity, error)
	UpdateFn      func(context.Context, int64, *model.Activity) error
	DeleteFn      func(context.Context, int64) error
	DeleteOwnedFn func(context.Context, int64, string) (bool, error)
}

// Activities returns predefined activities for given user.
func (s ActivityFacadeStub) Activities(ctx context.Context, userID string) ([]model.Activity, error) {
	if s.ActivitiesFn != nil {
		return s.ActivitiesFn(ctx, userID)
	}
	return []model.Activity{{ID: 1, Title: "Esame", UserID: userID}}, nil
}

// CreateActivity delegates to provided function or echoes with an id.
func (s ActivityFacadeStub) CreateActivity(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, activity)
	}
	created := *activity
	created.ID = 1
	return &created, nil
}

// UpdateActivity executes configured update handler.
func (s ActivityFacadeStub) UpdateActivity(ctx context.Context, id int64, activity *model.Activity) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, activity)
	}
	return nil
}

// DeleteActivity executes configured delete handler.
func (s ActivityFacadeStub) DeleteActivity(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// DeleteOwnedActivity executes configured owner-checked delete handler.
func (s ActivityFacadeStub) DeleteOwnedActivity(ctx context.Context, id int64, userID string) (bool, error) {
	if s.DeleteOwnedFn != nil {
		return s.DeleteOwnedFn(ctx, id, userID)
	}
	return true, nil
}

// PlannerFacadeStub aggregates facade dependencies for HTTP layer tests.
type PlannerFacadeStub struct {
	AuthFacadeStub
	ActivityFacadeStub
}
