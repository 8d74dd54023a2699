// Package services contains server-side business logic. This file implements
// UserService, which signs users in with a provider token and issues and
// rotates JWT access tokens plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/dbx"
	"github.com/dmitrijs2005/standup/internal/server/auth"
	"github.com/dmitrijs2005/standup/internal/server/config"
	"github.com/dmitrijs2005/standup/internal/server/identity"
	"github.com/dmitrijs2005/standup/internal/server/models"
	"github.com/dmitrijs2005/standup/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// IdentityVerifier resolves a provider token to a profile.
type IdentityVerifier interface {
	Verify(ctx context.Context, provider, token string) (*identity.Profile, error)
}

// UserService provides authentication-related operations:
// - SignIn: verify a provider token, upsert the user and mint tokens
// - RefreshToken: rotate refresh tokens and mint new access tokens
// - SignOut: revoke a refresh token
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	verifier                     IdentityVerifier
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, v IdentityVerifier, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		verifier:                     v,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// SignIn verifies token with provider and returns a session for the matching
// user, creating the user on first sign-in. Rejected provider tokens yield
// common.ErrorUnauthorized.
func (s *UserService) SignIn(ctx context.Context, provider, token string) (*TokenPair, *models.User, error) {
	if !common.IsKnownProvider(provider) {
		return nil, nil, fmt.Errorf("%w: %q", common.ErrUnknownProvider, provider)
	}

	profile, err := s.verifier.Verify(ctx, provider, token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrUnknownProvider) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("error verifying provider token: %w", err)
	}

	var (
		user *models.User
		pair *TokenPair
	)
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).Upsert(ctx, &models.User{
			Provider:    profile.Provider,
			Subject:     profile.Subject,
			DisplayName: profile.DisplayName,
			Email:       profile.Email,
			PhotoURL:    profile.PhotoURL,
		})
		if err != nil {
			return fmt.Errorf("error saving user: %w", err)
		}
		pair, err = s.generateTokenPair(ctx, user.ID, tx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("error searching refresh token: %w", common.ErrorUnauthorized)
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expired(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RefreshTokens(tx)
		if err := repoTx.Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// SignOut revokes refreshToken. Unknown tokens are ignored.
func (s *UserService) SignOut(ctx context.Context, refreshToken string) error {
	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// PurgeExpiredTokens drops refresh tokens that expired before now.
func (s *UserService) PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	return s.repomanager.RefreshTokens(s.db).DeleteExpired(ctx, now)
}

// GetUser returns the user with id.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshRepo := s.repomanager.RefreshTokens(tx)
	if err := refreshRepo.Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
