// user_test.go - Automated tests for user handlers
// Run with: go test ./...

package handlers

import (
	"bytes"             // For building request bodies
	"context"           // Request-independent context for store calls
	"encoding/json"     // For encoding/decoding JSON
	"net/http"          // HTTP status codes
	"net/http/httptest" // HTTP test helpers
	"path/filepath"     // Temp DB path
	"testing"           // Go's testing package

	"recipe-cart-backend/config"      // Project config
	"recipe-cart-backend/credentials" // Password hashing
	"recipe-cart-backend/database"    // Schema layer

	"github.com/gin-gonic/gin"            // Gin web framework
	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For fatal assertions
	"golang.org/x/crypto/bcrypt"          // Cheap cost for tests
)

// setupRouter returns a Gin engine backed by a fresh test database.
// Optional middleware runs ahead of every route.
func setupRouter(t *testing.T, mw ...gin.HandlerFunc) (*gin.Engine, *database.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := database.Connect(&config.Config{
		DBDriver:   config.DriverSQLite,
		DBPath:     filepath.Join(t.TempDir(), "test.db"),
		DBLogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	hasher, err := credentials.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw...)
	New(store, hasher, "test").SetupRoutes(r)
	return r, store
}

// doJSON sends body (if any) as JSON and returns the recorded response.
func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func createUser(t *testing.T, r *gin.Engine, username, email string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/users", CreateUserInput{Username: username, Email: email, Password: "testpass"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[struct {
		ID uint `json:"id"`
	}](t, w).ID
}

func TestCreateUser(t *testing.T) {
	router, store := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/users", CreateUserInput{Username: "u1", Email: "e1@x.com", Password: "testpass"})
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decode[map[string]any](t, w)
	assert.Equal(t, "u1", body["username"])
	assert.NotContains(t, body, "password") // never serialized
	assert.NotEmpty(t, body["created_at"])

	// The stored password is a bcrypt hash of the input.
	user, err := store.GetUserByUsername(context.Background(), "u1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("testpass")))
}

func TestCreateUserConflicts(t *testing.T) {
	router, _ := setupRouter(t)
	createUser(t, router, "u1", "e1@x.com")

	w := doJSON(router, http.MethodPost, "/users", CreateUserInput{Username: "u1", Email: "e2@x.com", Password: "p"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "error", decode[map[string]any](t, w)["status"])

	w = doJSON(router, http.MethodPost, "/users", CreateUserInput{Username: "u2", Email: "e1@x.com", Password: "p"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateUserBadInput(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/users", map[string]string{"email": "e1@x.com", "password": "p"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/users", CreateUserInput{Username: "u1", Email: "not-an-email", Password: "p"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]any](t, w)["message"], "email")
}

func TestUpdateUser(t *testing.T) {
	router, store := setupRouter(t)
	id := createUser(t, router, "u1", "e1@x.com")
	before, err := store.GetUser(context.Background(), id)
	require.NoError(t, err)

	w := doJSON(router, http.MethodPut, "/users/1", UpdateUserInput{Username: "renamed", Email: "e1@x.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "renamed", decode[map[string]any](t, w)["username"])

	after, err := store.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, before.Password, after.Password) // empty password keeps the hash

	w = doJSON(router, http.MethodPut, "/users/99", UpdateUserInput{Username: "x", Email: "x@x.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAndDeleteUser(t *testing.T) {
	router, _ := setupRouter(t)
	createUser(t, router, "u1", "e1@x.com")

	w := doJSON(router, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/users?username=u1", nil)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = doJSON(router, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodDelete, "/users/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
