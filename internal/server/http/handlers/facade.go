package handlers

import (
	"context"

	"github.com/polkiloo/attivita/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (string, error)
}

// ActivityFacade encapsulates activity operations exposed via HTTP.
type ActivityFacade interface {
	Activities(ctx context.Context, userID string) ([]model.Activity, error)
	CreateActivity(ctx context.Context, activity *model.Activity) (*model.Activity, error)
	UpdateActivity(ctx context.Context, id int64, activity *model.Activity) error
	DeleteActivity(ctx context.Context, id int64) error
}

// PlannerFacade aggregates the full set of operations used across handlers.
type PlannerFacade interface {
	AuthFacade
	ActivityFacade
}
