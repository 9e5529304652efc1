package test

import (
	"context"

	domainErrors "github.com/polkiloo/attivita/internal/domain/errors"
	"github.com/polkiloo/attivita/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests. Duplicate emails are
// allowed, mirroring the persistent store.
type UserRepositoryStub struct {
	Users []*model.User
	Next  int
	Err   error
}

// NewUserRepositoryStub constructs an empty stub repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{}
}

// Create registers a user with a fresh identity unless stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user := &model.User{ID: model.NewUserID(), Email: email, PasswordHash: passwordHash}
	s.Users = append(s.Users, user)
	return user, nil
}

// GetByEmail fetches the first user registered with the email.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, user := range s.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, user := range s.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Exists reports whether a user with the identifier was registered.
func (s *UserRepositoryStub) Exists(ctx context.Context, id string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	for _, user := range s.Users {
		if user.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// ActivityRepositoryStub keeps activities in-memory with the same versioning
// semantics as the PostgreSQL repository.
type ActivityRepositoryStub struct {
	Activities map[int64]*model.Activity
	NextID     int64
	Err        error
	UpdateErr  error
}

// NewActivityRepositoryStub constructs stub repository with initialized state.
func NewActivityRepositoryStub() *ActivityRepositoryStub {
	return &ActivityRepositoryStub{Activities: make(map[int64]*model.Activity), NextID: 1}
}

// Create assigns an identifier and stores a copy of the activity.
func (s *ActivityRepositoryStub) Create(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Activities == nil {
		s.Activities = make(map[int64]*model.Activity)
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	created := *activity
	created.ID = s.NextID
	created.Version = 1
	s.NextID++
	s.Activities[created.ID] = &created
	result := created
	return &result, nil
}

// GetByID returns a copy of the stored activity or not found.
func (s *ActivityRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored, ok := s.Activities[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

// ListByUser returns activities owned by the user in insertion order.
func (s *ActivityRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Activity, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Activity
	for id := int64(1); id < s.NextID; id++ {
		if stored, ok := s.Activities[id]; ok && stored.UserID == userID {
			result = append(result, *stored)
		}
	}
	return result, nil
}

// Update overwrites the stored record when the version matches.
func (s *ActivityRepositoryStub) Update(ctx context.Context, activity *model.Activity) error {
	if s.Err != nil {
		return s.Err
	}
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	stored, ok := s.Activities[activity.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if stored.Version != activity.Version {
		return domainErrors.ErrConflict
	}
	updated := *activity
	updated.Version = stored.Version + 1
	s.Activities[activity.ID] = &updated
	return nil
}

// Delete removes by identifier alone.
func (s *ActivityRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Activities[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Activities, id)
	return nil
}

// DeleteOwned removes only when identifier and owner both match.
func (s *ActivityRepositoryStub) DeleteOwned(ctx context.Context, id int64, userID string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	stored, ok := s.Activities[id]
	if !ok || stored.UserID != userID {
		return false, nil
	}
	delete(s.Activities, id)
	return true, nil
}
