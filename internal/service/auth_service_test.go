package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fitlog/internal/auth"
	"fitlog/internal/cache"
	"fitlog/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "service-test-secret-0123456789abcdef"

func newAuthService(repo *userRepoStub) *AuthService {
	return NewAuthService(repo, auth.NewTokenIssuer(testSecret, time.Hour), bcrypt.MinCost)
}

func TestAuthService_Register(t *testing.T) {
	repo := noopUserRepo()
	var created *models.User
	repo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 11
		created = u
		return nil
	}
	svc := newAuthService(repo)

	res, err := svc.Register(context.Background(), RegisterInput{
		Name:     "  Ada Lovelace ",
		Email:    "  Ada@Example.com",
		Password: "engine-no-1",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "Ada Lovelace", created.Name)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.NotEqual(t, "engine-no-1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("engine-no-1")))

	assert.Equal(t, uint(11), res.User.ID)
	assert.False(t, res.User.ProfileCompleted)

	claims, err := auth.NewTokenIssuer(testSecret, time.Hour).Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(11), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.Name)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      RegisterInput
		message string
	}{
		{"Missing name", RegisterInput{Email: "a@example.com", Password: "pw"}, "name, email and password are required."},
		{"Blank name", RegisterInput{Name: "   ", Email: "a@example.com", Password: "pw"}, "name, email and password are required."},
		{"Missing email", RegisterInput{Name: "A", Password: "pw"}, "name, email and password are required."},
		{"Missing password", RegisterInput{Name: "A", Email: "a@example.com"}, "name, email and password are required."},
		{"Bad email", RegisterInput{Name: "A", Email: "not-an-email", Password: "pw"}, "invalid email format"},
		{"Long password", RegisterInput{Name: "A", Email: "a@example.com", Password: strings.Repeat("x", 73)}, "password must not exceed 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := noopUserRepo()
			repo.createFn = func(context.Context, *models.User) error {
				t.Fatal("storage must not be called for invalid input")
				return nil
			}
			_, err := newAuthService(repo).Register(context.Background(), tt.in)
			appErr := assertAppError(t, err, models.CodeValidation)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	t.Run("pre-check finds existing email", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			assert.Equal(t, "dup@example.com", email)
			return &models.User{ID: 1, Email: email}, nil
		}
		_, err := newAuthService(repo).Register(context.Background(), RegisterInput{Name: "A", Email: "DUP@example.com", Password: "pw"})
		assertAppError(t, err, models.CodeDuplicateEmail)
	})

	t.Run("unique index loses the race", func(t *testing.T) {
		repo := noopUserRepo()
		repo.createFn = func(context.Context, *models.User) error { return models.NewDuplicateEmailError() }
		_, err := newAuthService(repo).Register(context.Background(), RegisterInput{Name: "A", Email: "dup@example.com", Password: "pw"})
		assertAppError(t, err, models.CodeDuplicateEmail)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := noopUserRepo()
		repo.createFn = func(context.Context, *models.User) error {
			return models.NewStorageError("Failed to create account.", errors.New("timeout"))
		}
		_, err := newAuthService(repo).Register(context.Background(), RegisterInput{Name: "A", Email: "a@example.com", Password: "pw"})
		appErr := assertAppError(t, err, models.CodeStorage)
		assert.Equal(t, "Failed to create account.", appErr.Message)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email == "ada@example.com" {
			return &models.User{ID: 3, Name: "Ada", Email: email, PasswordHash: string(hash)}, nil
		}
		return nil, nil
	}
	svc := newAuthService(repo)
	ctx := context.Background()

	res, err := svc.Login(ctx, " ADA@example.com ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, uint(3), res.User.ID)
	assert.NotEmpty(t, res.Token)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	appErr := assertAppError(t, err, models.CodeInvalidCredentials)
	assert.Equal(t, "Invalid credentials.", appErr.Message)

	_, err = svc.Login(ctx, "nobody@example.com", "correct horse")
	assertAppError(t, err, models.CodeInvalidCredentials)

	_, err = svc.Login(ctx, "", "x")
	appErr = assertAppError(t, err, models.CodeValidation)
	assert.Equal(t, "email and password are required.", appErr.Message)
}

func TestAuthService_VerifyToken(t *testing.T) {
	svc := newAuthService(noopUserRepo())
	ctx := context.Background()

	_, err := svc.VerifyToken(ctx, "")
	appErr := assertAppError(t, err, models.CodeUnauthenticated)
	assert.Equal(t, "Missing auth token.", appErr.Message)

	_, err = svc.VerifyToken(ctx, "garbage")
	appErr = assertAppError(t, err, models.CodeUnauthenticated)
	assert.Equal(t, "Invalid or expired token.", appErr.Message)

	token, err := auth.NewTokenIssuer(testSecret, time.Hour).Issue(9, "x@example.com", "X")
	require.NoError(t, err)
	claims, err := svc.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(9), claims.UserID)
}

func TestAuthService_VerifyBearer(t *testing.T) {
	svc := newAuthService(noopUserRepo())
	ctx := context.Background()

	_, err := svc.VerifyBearer(ctx, "")
	appErr := assertAppError(t, err, models.CodeUnauthenticated)
	assert.Equal(t, "Missing auth token.", appErr.Message)

	_, err = svc.VerifyBearer(ctx, "Token abc")
	appErr = assertAppError(t, err, models.CodeUnauthenticated)
	assert.Equal(t, "Invalid or expired token.", appErr.Message)

	token, err := auth.NewTokenIssuer(testSecret, time.Hour).Issue(3, "y@example.com", "Y")
	require.NoError(t, err)
	claims, err := svc.VerifyBearer(ctx, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })

	svc := newAuthService(noopUserRepo())
	ctx := context.Background()

	token, err := auth.NewTokenIssuer(testSecret, time.Hour).Issue(9, "x@example.com", "X")
	require.NoError(t, err)
	claims, err := svc.VerifyToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims))
	ttl := mr.TTL(cache.RevokedKey(claims.ID))
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	_, err = svc.VerifyToken(ctx, token)
	appErr := assertAppError(t, err, models.CodeUnauthenticated)
	assert.Equal(t, "Invalid or expired token.", appErr.Message)
}

func TestAuthService_LogoutWithoutRedis(t *testing.T) {
	cache.SetClient(nil)
	svc := newAuthService(noopUserRepo())

	token, err := auth.NewTokenIssuer(testSecret, time.Hour).Issue(9, "x@example.com", "X")
	require.NoError(t, err)
	claims, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)

	assert.NoError(t, svc.Logout(context.Background(), claims))
	_, err = svc.VerifyToken(context.Background(), token)
	assert.NoError(t, err)
}
