package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlog/internal/config"
	"fitlog/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "server-test-secret-0123456789abcdef"

func testConfig() *config.Config {
	return &config.Config{
		Env:            "test",
		Port:           "0",
		JWTSecret:      testJWTSecret,
		JWTTTLHours:    1,
		BcryptCost:     bcrypt.MinCost,
		AllowedOrigins: "http://localhost:5173",
		DBDriver:       config.DriverSQLite,
	}
}

// newTestServer returns a server backed by a fresh in-memory database.
func newTestServer(t *testing.T, rdb *redis.Client) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestServerWithConfig(t, testConfig(), rdb)
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config, rdb *redis.Client) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	srv, err := NewServerWithDeps(cfg, db, rdb)
	require.NoError(t, err)
	return srv.App(), db
}

type response struct {
	Status int
	Header http.Header
	Body   []byte
}

func (r response) json(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &out), "body: %s", r.Body)
	return out
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{Status: resp.StatusCode, Header: resp.Header, Body: raw}
}

// register creates an account and returns its token and user id.
func register(t *testing.T, app *fiber.App, name, email string) (string, uint) {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, resp.Status, "body: %s", resp.Body)

	body := resp.json(t)
	user := body["user"].(map[string]any)
	return body["token"].(string), uint(user["id"].(float64))
}

// doRequestWithHeader issues a GET with a raw Authorization header value.
func doRequestWithHeader(t *testing.T, app *fiber.App, path, authorization string) response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{Status: resp.StatusCode, Header: resp.Header, Body: raw}
}
