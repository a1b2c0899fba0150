// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login and issuing JWTs over the
// credential store.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/config"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create a user and mint their first token
// - Login: verify credentials and mint a bounded token
// - ResolveUserID: verify a bearer token (used by the auth gate)
type UserService struct {
	db                        *sql.DB
	repomanager               repomanager.RepositoryManager
	hasher                    *auth.Hasher
	jwtSecret                 []byte
	authTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher: auth.NewHasher(auth.Argon2Params{
			Time:    cfg.HashTimeCost,
			Memory:  cfg.HashMemoryKiB,
			Threads: cfg.HashThreads,
			KeyLen:  32,
		}),
		jwtSecret:                 []byte(cfg.SecretKey),
		authTokenValidityDuration: cfg.AuthTokenValidityDuration,
	}
}

// Register creates a new user with an all-zero cart and returns the user
// together with a signed token. The signup token carries no expiry; only
// login-issued tokens are time-bounded. A taken email yields
// common.ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: s.hasher.Hash(password),
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, "", common.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(u.ID, s.jwtSecret, 0)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return u, token, nil
}

// Login verifies the password for the given email and returns a token with
// the configured lifetime. Unknown emails and wrong passwords fail with
// distinct sentinels; the transport keeps the original's distinct messages
// for frontend compatibility.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUnknownEmail
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", common.ErrWrongPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.authTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// ResolveUserID verifies the bearer token and returns the user identity it
// carries. The identity must still exist in the credential store; a token
// minted for a since-deleted user fails the same way as a bad token. Any
// verification failure is common.ErrInvalidToken.
func (s *UserService) ResolveUserID(ctx context.Context, token string) (string, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidToken
		}
		return "", common.ErrorInternal
	}

	return userID, nil
}
