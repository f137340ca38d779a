package models

import "time"

// Item is a named record belonging to exactly one user. The (UserID, Name)
// pair is unique; UserID is immutable after creation.
type Item struct {
	ID          int64
	Name        string
	Description string
	UserID      int64
	CreatedAt   time.Time
}

// OwnedBy reports whether the item belongs to the given user. Mutating
// operations must not proceed when this is false.
func (i *Item) OwnedBy(userID int64) bool {
	return i.UserID == userID
}
