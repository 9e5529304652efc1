package model

import "time"

// Activity is a user-owned planner record. Version backs optimistic
// concurrency in the persistent store and is managed by the repository.
type Activity struct {
	ID          int64
	Title       string
	Description string
	Due         time.Time
	Status      string
	UserID      string
	Version     int64
}
