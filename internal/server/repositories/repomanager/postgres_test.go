package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgresRepositoryManager_VendsRepositories(t *testing.T) {
	m, err := NewPostgresRepositoryManager()
	require.NoError(t, err)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.NotNil(t, m.Users(db))
	assert.NotNil(t, m.Items(db))
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	want := errors.New("migration failed")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return want
	}

	m, err := NewPostgresRepositoryManager()
	require.NoError(t, err)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = m.RunMigrations(context.Background(), db)
	assert.ErrorIs(t, err, want)
}

func TestRunMigrations_CallsGooseUp(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	called := false
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		return nil
	}

	m, err := NewPostgresRepositoryManager()
	require.NoError(t, err)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, m.RunMigrations(context.Background(), db))
	assert.True(t, called)
}
