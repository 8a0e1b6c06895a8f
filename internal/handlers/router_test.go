package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/citylib/library-api/internal/config"
	dbpkg "github.com/citylib/library-api/internal/db"
	"github.com/citylib/library-api/internal/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret", ServerPort: "0"}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, nil)

	return &testEnv{router: r, db: db}
}

// do sends a JSON request through the router, with an optional bearer token.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// register creates a user through the API and returns a login token.
func (e *testEnv) register(t *testing.T, email, role string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/register", "", gin.H{
		"fullName":        "Test User",
		"email":           email,
		"phone":           "5550100",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"role":            role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return e.login(t, email, "secret123")
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (e *testEnv) addBook(t *testing.T, ownerToken, bookID string, copies int) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/books", ownerToken, gin.H{
		"book_id":          bookID,
		"title":            "Book " + bookID,
		"author":           "Some Author",
		"genre":            "Fiction",
		"isbn":             "ISBN-" + bookID,
		"publication_year": 2020,
		"total_copies":     copies,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
