// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification and
// session-token issuance, and resolves tokens back to identities.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"itemvault/internal/common"
	"itemvault/internal/server/auth"
	"itemvault/internal/server/config"
	"itemvault/internal/server/models"
	"itemvault/internal/server/repositories/repomanager"
)

// dummyPasswordHash is a syntactically valid bcrypt hash compared against on
// the unknown-email login path, so that path costs the same as a real
// verification and response timing does not reveal whether the email exists.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserWithItems bundles a user with their items for the public listings.
type UserWithItems struct {
	User  *models.User
	Items []*models.Item
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint an access token
// - CurrentUser: resolve an access token to a live identity
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      *auth.PasswordHasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		hasher:                      auth.NewPasswordHasher(cfg.BcryptCost),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user after checking that neither the email nor the
// name is taken. The store's unique indexes back the same checks, so a
// concurrent registration racing past the pre-checks still surfaces as
// ErrorConflict.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %w", common.ErrorConflict)
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	if _, err := repo.FindByName(ctx, name); err == nil {
		return nil, fmt.Errorf("username %w", common.ErrorConflict)
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and, on success, returns a signed access
// token together with the identity. Unknown email and wrong password return
// the same ErrorUnauthorized and cost the same bcrypt comparison.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Check(password, dummyPasswordHash)
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

// CurrentUser resolves an access token to the identity it names. A token
// whose subject no longer exists is not trusted: the caller gets
// ErrorUnauthenticated, same as for a missing or invalid token.
func (s *UserService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// GetUser returns a user's public profile together with their items.
func (s *UserService) GetUser(ctx context.Context, id int64) (*UserWithItems, error) {
	user, err := s.repomanager.Users(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repomanager.Items(s.db).ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	return &UserWithItems{User: user, Items: items}, nil
}

// ListUsers returns every registered user with their items.
func (s *UserService) ListUsers(ctx context.Context) ([]*UserWithItems, error) {
	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	itemsRepo := s.repomanager.Items(s.db)

	result := make([]*UserWithItems, 0, len(users))
	for _, user := range users {
		items, err := itemsRepo.ListByOwner(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &UserWithItems{User: user, Items: items})
	}

	return result, nil
}
