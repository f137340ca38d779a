// Package items provides persistence for user-owned records.
package items

import (
	"context"

	"itemvault/internal/server/models"
)

// ItemWithOwner pairs an item with its owner's display name for public
// listings.
type ItemWithOwner struct {
	Item      models.Item
	OwnerName string
}

type Repository interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	FindByID(ctx context.Context, id int64) (*models.Item, error)
	// FindByOwnerAndID scopes the lookup to the owner; a non-owner gets the
	// same "not found" as a missing row.
	FindByOwnerAndID(ctx context.Context, ownerID, id int64) (*models.Item, error)
	FindByOwnerAndName(ctx context.Context, ownerID int64, name string) (*models.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Item, error)
	List(ctx context.Context) ([]*ItemWithOwner, error)
	// Delete removes the item only when it belongs to ownerID.
	Delete(ctx context.Context, id, ownerID int64) error
}
