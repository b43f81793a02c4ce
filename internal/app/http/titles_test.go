package routes

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, r http.Handler, token string) {
	createGenreVia(t, r, token, "Drama", "drama")
	createGenreVia(t, r, token, "Comedy", "comedy")
	createGenreVia(t, r, token, "Thriller", "thriller")
	createCategoryVia(t, r, token, "Movie", "films")
	createCategoryVia(t, r, token, "Books", "books")
}

func TestTitlesListIsPublic(t *testing.T) {
	r := setupRouter(t)
	assert.Equal(t, http.StatusOK, doJSON(r, "GET", "/api/v1/titles/", "", nil).Code)
}

func TestTitlesCreateAndFilters(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin", "admin")
	token := tokenFor(t, admin)
	seedCatalog(t, r, token)

	w := doJSON(r, "POST", "/api/v1/titles/", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	createTitleVia(t, r, token, map[string]interface{}{
		"name": "Turn there", "year": 2000, "genre": []string{"drama", "comedy"},
		"category": "films", "description": "Cool peak",
	})
	created := createTitleVia(t, r, token, map[string]interface{}{
		"name": "Project", "year": 2020, "genre": []string{"thriller"},
		"category": "books", "description": "Main drama of the year",
	})
	assert.IsType(t, float64(0), created["id"])

	w = doJSON(r, "GET", "/api/v1/titles/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.EqualValues(t, 2, env.Count)
	require.Len(t, env.Results, 2)

	var title map[string]interface{}
	for _, row := range env.Results {
		if row["name"] == "Turn there" {
			title = row
		}
	}
	require.NotNil(t, title, "created title missing from list")
	assert.Nil(t, title["rating"], "rating without reviews should be null")
	assert.Equal(t, map[string]interface{}{"name": "Movie", "slug": "films"}, title["category"])
	assert.Contains(t, title["genre"], map[string]interface{}{"name": "Drama", "slug": "drama"})
	assert.Contains(t, title["genre"], map[string]interface{}{"name": "Comedy", "slug": "comedy"})
	assert.EqualValues(t, 2000, title["year"])
	assert.Equal(t, "Cool peak", title["description"])

	createTitleVia(t, r, token, map[string]interface{}{
		"name": "Turn", "year": 2020, "genre": []string{"comedy"},
		"category": "books", "description": "Cool peak",
	})

	w = doJSON(r, "GET", "/api/v1/titles/?genre=comedy", "", nil)
	assert.Len(t, decodeEnvelope(t, w).Results, 2)

	w = doJSON(r, "GET", "/api/v1/titles/?category=films", "", nil)
	assert.Len(t, decodeEnvelope(t, w).Results, 1)

	w = doJSON(r, "GET", "/api/v1/titles/?year=2000", "", nil)
	assert.Len(t, decodeEnvelope(t, w).Results, 1)

	w = doJSON(r, "GET", "/api/v1/titles/?name=Turn", "", nil)
	assert.Len(t, decodeEnvelope(t, w).Results, 2)
}

func TestTitlesValidation(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin", "admin")
	token := tokenFor(t, admin)
	seedCatalog(t, r, token)

	w := doJSON(r, "POST", "/api/v1/titles/", token, map[string]interface{}{
		"name": "From the future", "year": time.Now().Year() + 1,
		"genre": []string{"drama"}, "category": "films",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "POST", "/api/v1/titles/", token, map[string]interface{}{
		"name": "No such genre", "year": 2000,
		"genre": []string{"polka"}, "category": "films",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "POST", "/api/v1/titles/", token, map[string]interface{}{
		"name": "No such category", "year": 2000,
		"genre": []string{"drama"}, "category": "scrolls",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTitlesDetailUpdateDelete(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin", "admin")
	token := tokenFor(t, admin)
	seedCatalog(t, r, token)

	created := createTitleVia(t, r, token, map[string]interface{}{
		"name": "Turn there", "year": 2000, "genre": []string{"drama"},
		"category": "films", "description": "Cool peak",
	})
	id := int(created["id"].(float64))
	path := fmt.Sprintf("/api/v1/titles/%d/", id)

	w := doJSON(r, "GET", path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	obj := decodeObject(t, w)
	assert.Equal(t, "Turn there", obj["name"])
	assert.Nil(t, obj["rating"])

	assert.Equal(t, http.StatusNotFound, doJSON(r, "GET", "/api/v1/titles/999/", "", nil).Code)

	w = doJSON(r, "PATCH", path, token, map[string]interface{}{
		"name": "Turn back", "category": "books", "genre": []string{"comedy", "thriller"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	obj = decodeObject(t, w)
	assert.Equal(t, "Turn back", obj["name"])
	assert.Equal(t, map[string]interface{}{"name": "Books", "slug": "books"}, obj["category"])
	assert.Len(t, obj["genre"], 2)

	w = doJSON(r, "PATCH", path, token, map[string]interface{}{"year": time.Now().Year() + 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusNotFound, doJSON(r, "PATCH", "/api/v1/titles/999/", token, map[string]interface{}{"name": "x"}).Code)

	assert.Equal(t, http.StatusNoContent, doJSON(r, "DELETE", path, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, "GET", path, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, "DELETE", path, token, nil).Code)
}

func TestTitlesPermissions(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin", "admin")
	token := tokenFor(t, admin)
	seedCatalog(t, r, token)
	created := createTitleVia(t, r, token, map[string]interface{}{
		"name": "Turn there", "year": 2000, "genre": []string{"drama"}, "category": "films",
	})
	path := fmt.Sprintf("/api/v1/titles/%d/", int(created["id"].(float64)))

	payload := map[string]interface{}{
		"name": "Nope", "year": 2000, "genre": []string{"drama"}, "category": "films",
	}

	assert.Equal(t, http.StatusUnauthorized, doJSON(r, "POST", "/api/v1/titles/", "", payload).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(r, "PATCH", path, "", payload).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(r, "DELETE", path, "", nil).Code)

	for _, role := range []string{"user", "moderator"} {
		tk := tokenFor(t, createUser(t, "plain-"+role, role))
		assert.Equal(t, http.StatusForbidden, doJSON(r, "POST", "/api/v1/titles/", tk, payload).Code, role)
		assert.Equal(t, http.StatusForbidden, doJSON(r, "PATCH", path, tk, map[string]interface{}{"name": "x"}).Code, role)
		assert.Equal(t, http.StatusForbidden, doJSON(r, "DELETE", path, tk, nil).Code, role)
	}
}
