// Package repomanager vends repository implementations bound to a DB handle
// and owns schema migration.
package repomanager

import (
	"context"
	"database/sql"

	"itemvault/internal/dbx"
	"itemvault/internal/server/repositories/items"
	"itemvault/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to either the connection
// pool or an open transaction, so services can compose multi-step operations
// inside dbx.WithTx.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Items(db dbx.DBTX) items.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
