// Package services contains server-side business logic. This file implements
// AuthService, which composes the credential hasher, identifier generator,
// token issuer, and token store into the registration and login flows.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopcore/authsvc/internal/common"
	"github.com/shopcore/authsvc/internal/cryptox"
	"github.com/shopcore/authsvc/internal/dbx"
	"github.com/shopcore/authsvc/internal/idx"
	"github.com/shopcore/authsvc/internal/logging"
	"github.com/shopcore/authsvc/internal/server/auth"
	"github.com/shopcore/authsvc/internal/server/config"
	"github.com/shopcore/authsvc/internal/server/models"
	"github.com/shopcore/authsvc/internal/server/oauth"
	"github.com/shopcore/authsvc/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// ProfileView is the profile projection returned to authenticated callers.
type ProfileView struct {
	Name       string
	Email      string
	City       string
	PostalCode string
}

// ProfileFetcher retrieves a user profile from an external identity provider
// given an access token the client obtained elsewhere.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, accessToken string) (*oauth.Profile, error)
}

// AuthService provides the authentication operations:
//   - Register: create accounts
//   - Login / FederatedLogin: verify identity and mint token pairs
//   - Refresh: rotate refresh tokens and mint new access tokens
//   - Logout: revoke the active refresh token
//   - Profile: fetch the caller's profile projection
//
// Every failure surfaces as one of the common sentinel errors; raw
// infrastructure errors never leak past this boundary.
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	profiles                     ProfileFetcher
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories, the profile
// client, and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, profiles ProfileFetcher, logger logging.Logger, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		profiles:                     profiles,
		logger:                       logger.With("module", "auth_service"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new user account. It does not log the user in;
// callers follow up with Login. All fields are required.
func (s *AuthService) Register(ctx context.Context, name, email, password, city, postalCode string) error {
	if name == "" || email == "" || password == "" || city == "" || postalCode == "" {
		return common.ErrorBadRequest
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "register: error looking up email", "error", err)
		return common.ErrorSomethingWentWrong
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		s.logger.Error(ctx, "register: error hashing password", "error", err)
		return common.ErrorSomethingWentWrong
	}

	user := &models.User{
		UserID:       idx.Generate(idx.User),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		City:         city,
		PostalCode:   postalCode,
	}
	if _, err := repo.Create(ctx, user); err != nil {
		s.logger.Error(ctx, "register: error creating user", "error", err)
		return common.ErrorSomethingWentWrong
	}

	return nil
}

// Login verifies the password against the stored salted hash and, on
// success, rotates the user's refresh token and returns a new TokenPair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	if email == "" || password == "" {
		return nil, common.ErrorBadRequest
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "login: error looking up email", "error", err)
		return nil, common.ErrorSomethingWentWrong
	}

	ok, err := cryptox.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "login: error verifying password", "error", err)
		return nil, common.ErrorSomethingWentWrong
	}
	if !ok {
		return nil, common.ErrorWrongCredentials
	}

	return s.issueTokenPair(ctx, user.UserID, s.db)
}

// FederatedLogin resolves the third-party access token to a provider
// profile, locates the matching local account by email, and issues a token
// pair. Accounts are never auto-provisioned from federated identity.
func (s *AuthService) FederatedLogin(ctx context.Context, providerAccessToken string) (*TokenPair, error) {
	if providerAccessToken == "" {
		return nil, common.ErrorBadRequest
	}

	profile, err := s.profiles.FetchProfile(ctx, providerAccessToken)
	if err != nil {
		s.logger.Error(ctx, "federated login: error fetching provider profile", "error", err)
		return nil, common.ErrorSomethingWentWrong
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "federated login: error looking up email", "error", err)
		return nil, common.ErrorSomethingWentWrong
	}

	return s.issueTokenPair(ctx, user.UserID, s.db)
}

// Refresh validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. A presented token that no longer matches the
// stored record is treated as reuse: the stored record is soft-revoked
// before the call fails.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, common.ErrorBadRequest
	}

	claims := auth.Decode(refreshToken, s.jwtSecret)
	if claims == nil {
		return nil, common.ErrorWrongCredentials
	}

	var pair *TokenPair
	var reused bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.RefreshTokens(tx)

		record, err := repo.FindByUser(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorWrongCredentials
			}
			s.logger.Error(ctx, "refresh: error looking up token record", "error", err)
			return common.ErrorSomethingWentWrong
		}

		if record.Token != refreshToken {
			reused = true
			return common.ErrorWrongCredentials
		}
		if !record.Active {
			return common.ErrorWrongCredentials
		}
		if record.ExpiresAt < time.Now().Unix() {
			return common.ErrRefreshTokenExpired
		}

		var issueErr error
		pair, issueErr = s.issueTokenPair(ctx, claims.UserID, tx)
		return issueErr
	})
	// Soft-revoke outside the transaction: the closure's error rolls the
	// transaction back, and the revoke must survive that.
	if reused {
		if _, dErr := s.repomanager.RefreshTokens(s.db).Deactivate(ctx, claims.UserID); dErr != nil {
			s.logger.Error(ctx, "refresh: error deactivating reused token", "error", dErr)
		}
	}
	if err != nil {
		return nil, err
	}

	return pair, nil
}

// Logout removes the user's refresh-token record and reports how many
// records were deleted.
func (s *AuthService) Logout(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, common.ErrorBadRequest
	}

	count, err := s.repomanager.RefreshTokens(s.db).DeleteAllForUser(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "logout: error deleting token records", "error", err)
		return 0, common.ErrorSomethingWentWrong
	}
	return count, nil
}

// Profile returns the profile projection for an already-authenticated user.
func (s *AuthService) Profile(ctx context.Context, userID string) (*ProfileView, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "profile: error looking up user", "error", err)
		return nil, common.ErrorSomethingWentWrong
	}

	return &ProfileView{
		Name:       user.Name,
		Email:      user.Email,
		City:       user.City,
		PostalCode: user.PostalCode,
	}, nil
}

// issueTokenPair mints both tokens and replaces the user's stored refresh
// record with the new one. The record's expiry comes from decoding the
// refresh token just issued, so store and claim can never drift apart.
func (s *AuthService) issueTokenPair(ctx context.Context, userID string, db dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "issue: error generating access token", "error", err)
		return nil, common.ErrorSomethingWentWrong
	}

	refresh, err := auth.GenerateToken(userID, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "issue: error generating refresh token", "error", err)
		return nil, common.ErrorSomethingWentWrong
	}

	claims := auth.Decode(refresh, s.jwtSecret)
	if claims == nil {
		s.logger.Error(ctx, "issue: could not decode freshly issued refresh token")
		return nil, common.ErrorSomethingWentWrong
	}

	repo := s.repomanager.RefreshTokens(db)
	if _, err := repo.Store(ctx, userID, refresh, claims.ExpiresAt.Unix()); err != nil {
		s.logger.Error(ctx, "issue: error storing refresh token", "error", err)
		return nil, common.ErrorSomethingWentWrong
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
