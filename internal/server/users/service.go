// Package users implements the credential lifecycle: validation, the user
// store, and the service orchestrating signup, login, and token-based
// current-user resolution.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/esavelyev/accountd/internal/common"
	"github.com/esavelyev/accountd/internal/server/auth"
	"github.com/esavelyev/accountd/internal/server/config"
)

// TokenType is the scheme reported alongside issued access tokens.
const TokenType = "bearer"

// LoginResult bundles a freshly minted access token with the authenticated
// user record.
type LoginResult struct {
	AccessToken string
	TokenType   string
	User        *User
}

type Service struct {
	repo          Repository
	hasher        auth.PasswordHasher
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, hasher auth.PasswordHasher, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Signup validates the credentials and creates the user. The username is
// trimmed, the email trimmed and lowercased. Uniqueness is enforced by the
// store: a duplicate insert yields common.ErrorAlreadyExists, including
// under concurrent signups.
func (s *Service) Signup(ctx context.Context, username, email, password, confirmPassword string) (*User, error) {

	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if !IsValidEmail(email) {
		return nil, common.ErrorInvalidEmail
	}
	if !IsStrongPassword(password) {
		return nil, common.ErrorWeakPassword
	}
	if password != confirmPassword {
		return nil, common.ErrorPasswordMismatch
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login resolves the identifier (exact username or case-insensitive email),
// checks the password against the stored digest, and mints an access token.
// An unknown identifier yields common.ErrorNotFound; a wrong password
// yields common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {

	identifier = strings.TrimSpace(identifier)

	user, err := s.repo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordDigest)
	if err != nil {
		return nil, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Username, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &LoginResult{AccessToken: token, TokenType: TokenType, User: user}, nil
}

// CurrentUser resolves a bearer token back to the stored user record.
// Verification failures keep their internal cause (expired, malformed, no
// subject, user deleted after issuance) but all surface as Unauthorized.
func (s *Service) CurrentUser(ctx context.Context, token string) (*User, error) {

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	if claims.Subject == "" {
		return nil, common.ErrNoSubject
	}

	user, err := s.repo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// stale token: the user is gone but the signature still checks out
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user, nil
}
