package repository

import (
	"context"

	"github.com/polkiloo/attivita/internal/domain/model"
)

// ActivityRepository describes persistence operations for activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) (*model.Activity, error)
	GetByID(ctx context.Context, id int64) (*model.Activity, error)
	ListByUser(ctx context.Context, userID string) ([]model.Activity, error)
	Update(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, id int64) error
	DeleteOwned(ctx context.Context, id int64, userID string) (bool, error)
}
