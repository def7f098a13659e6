// Package service holds the business rules between HTTP handlers and repositories.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fitlog/internal/auth"
	"fitlog/internal/cache"
	"fitlog/internal/middleware"
	"fitlog/internal/models"
	"fitlog/internal/repository"
	"fitlog/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

const (
	msgRegisterRequired = "name, email and password are required."
	msgLoginRequired    = "email and password are required."
	msgRegisterFailed   = "Failed to create account."
	msgMissingToken     = "Missing auth token."
	msgInvalidToken     = "Invalid or expired token."
)

// AuthResult is returned by registration and login.
type AuthResult struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// RegisterInput is the registration request after JSON decoding.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService registers and authenticates users and issues and verifies their tokens.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenIssuer
	bcryptCost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService returns an AuthService hashing with bcryptCost (bcrypt.DefaultCost when out of range).
func NewAuthService(users repository.UserRepository, tokens *auth.TokenIssuer, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates an account and signs the new user in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := validation.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, models.NewValidationError(msgRegisterRequired)
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewStorageError(msgRegisterFailed, err)
	}
	if existing != nil {
		return nil, models.NewDuplicateEmailError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, models.NewStorageError(msgRegisterFailed, err)
	}

	user := &models.User{Name: name, Email: email, PasswordHash: string(hash)}
	// The unique index still decides races between concurrent registrations.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "User registered", slog.Uint64("user_id", uint64(user.ID)))
	return s.session(user, msgRegisterFailed)
}

// Authenticate checks credentials. Unknown emails and wrong passwords are indistinguishable,
// including in timing: a bcrypt comparison runs in both cases.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, models.NewValidationError(msgLoginRequired)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return nil, models.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.NewInvalidCredentialsError()
	}
	return user, nil
}

// Login authenticates and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.session(user, "Login failed.")
}

// VerifyToken validates a raw bearer token and rejects revoked ones.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrMissingToken) {
			return nil, models.NewUnauthenticatedError(msgMissingToken)
		}
		return nil, &models.AppError{Code: models.CodeUnauthenticated, Message: msgInvalidToken, Err: err}
	}

	revoked, err := cache.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "Token revocation check failed", slog.String("error", err.Error()))
	}
	if revoked {
		return nil, models.NewUnauthenticatedError(msgInvalidToken)
	}
	return claims, nil
}

// VerifyBearer verifies the token carried by an Authorization header value.
func (s *AuthService) VerifyBearer(ctx context.Context, header string) (*auth.Claims, error) {
	token, err := auth.BearerToken(header)
	if err != nil {
		if errors.Is(err, auth.ErrMissingToken) {
			return nil, models.NewUnauthenticatedError(msgMissingToken)
		}
		return nil, &models.AppError{Code: models.CodeUnauthenticated, Message: msgInvalidToken, Err: err}
	}
	return s.VerifyToken(ctx, token)
}

// Logout revokes the token described by claims for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if err := cache.RevokeToken(ctx, claims.ID, remaining); err != nil {
		return models.NewStorageError("Could not log out.", err)
	}
	return nil
}

func (s *AuthService) session(user *models.User, failure string) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, models.NewStorageError(failure, err)
	}
	return &AuthResult{User: user.Public(), Token: token}, nil
}

func (s *AuthService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("fitlog-timing-equalizer"), s.bcryptCost)
	})
	return s.dummyHash
}
