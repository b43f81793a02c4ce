package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog-app/config"
	"catalog-app/database"
	"catalog-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	r := gin.New()
	RegisterRoutes(r)
	return r
}

func createUser(t *testing.T, username, role string) users.User {
	u := users.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

func tokenFor(t *testing.T, u users.User) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  u.ID,
		"username": u.Username,
		"role":     u.Role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return signed
}

func doJSON(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Count    int64                    `json:"count"`
	Next     *string                  `json:"next"`
	Previous *string                  `json:"previous"`
	Results  []map[string]interface{} `json:"results"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &obj))
	return obj
}

// API-level fixtures, created the way a client would.

func createCategoryVia(t *testing.T, r http.Handler, token, name, slug string) {
	w := doJSON(r, "POST", "/api/v1/categories/", token, map[string]interface{}{
		"name": name, "slug": slug,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func createGenreVia(t *testing.T, r http.Handler, token, name, slug string) {
	w := doJSON(r, "POST", "/api/v1/genres/", token, map[string]interface{}{
		"name": name, "slug": slug,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func createTitleVia(t *testing.T, r http.Handler, token string, payload map[string]interface{}) map[string]interface{} {
	w := doJSON(r, "POST", "/api/v1/titles/", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeObject(t, w)
}
