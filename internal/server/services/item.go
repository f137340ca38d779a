package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itemvault/internal/common"
	"itemvault/internal/dbx"
	"itemvault/internal/server/models"
	"itemvault/internal/server/repositories/items"
	"itemvault/internal/server/repositories/repomanager"
)

// ItemService manages user-owned records. Reads are public; every mutation
// goes through an ownership check that masks foreign items as not found.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repomanager: m}
}

// Create adds a new item owned by ownerID. The name must be unique among the
// owner's items; the pre-check and the store's unique index both map to
// ErrorConflict, so a concurrent duplicate create cannot slip through.
func (s *ItemService) Create(ctx context.Context, ownerID int64, name, description string) (*models.Item, error) {
	repo := s.repomanager.Items(s.db)

	if _, err := repo.FindByOwnerAndName(ctx, ownerID, name); err == nil {
		return nil, fmt.Errorf("item name %w", common.ErrorConflict)
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	item, err := repo.Create(ctx, &models.Item{Name: name, Description: description, UserID: ownerID})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, fmt.Errorf("item name %w", common.ErrorConflict)
		}
		return nil, fmt.Errorf("error creating item: %w", err)
	}

	return item, nil
}

// Delete removes an item on behalf of ownerID. A non-owner gets the same
// ErrorNotFound as a missing item, so the call never confirms that the item
// exists. Lookup and delete run in one transaction.
func (s *ItemService) Delete(ctx context.Context, ownerID, itemID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)

		item, err := repo.FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if !item.OwnedBy(ownerID) {
			return common.ErrorNotFound
		}

		return repo.Delete(ctx, itemID, ownerID)
	})
}

// Get returns any item by id. Reads are intentionally public.
func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.repomanager.Items(s.db).FindByID(ctx, id)
}

// List returns every item together with its owner's name.
func (s *ItemService) List(ctx context.Context) ([]*items.ItemWithOwner, error) {
	return s.repomanager.Items(s.db).List(ctx)
}

// ListOwned returns the items belonging to ownerID.
func (s *ItemService) ListOwned(ctx context.Context, ownerID int64) ([]*models.Item, error) {
	return s.repomanager.Items(s.db).ListByOwner(ctx, ownerID)
}

// GetOwned returns one of ownerID's items; items of other users look absent.
func (s *ItemService) GetOwned(ctx context.Context, ownerID, itemID int64) (*models.Item, error) {
	return s.repomanager.Items(s.db).FindByOwnerAndID(ctx, ownerID, itemID)
}
