package routes

import (
	"fmt"
	"net/http"
	"testing"

	"catalog-app/database"
	"catalog-app/internal/domain/reviews"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postComment(t *testing.T, r http.Handler, token, base, text string) map[string]interface{} {
	w := doJSON(r, "POST", base+"comments/", token, map[string]interface{}{"text": text})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeObject(t, w)
}

func TestCommentsCRUD(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin", "admin")
	adminToken := tokenFor(t, admin)
	author := createUser(t, "bob", "user")
	authorToken := tokenFor(t, author)
	otherToken := tokenFor(t, createUser(t, "mallory", "user"))
	modToken := tokenFor(t, createUser(t, "mod", "moderator"))
	first, _ := seedTitles(t, r, adminToken)

	review := postReview(t, r, adminToken, first, "the review", 5)
	base := fmt.Sprintf("/api/v1/titles/%d/reviews/%d/", first, int(review["id"].(float64)))

	// anyone may read, only authenticated users may write
	assert.Equal(t, http.StatusOK, doJSON(r, "GET", base+"comments/", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(r, "POST", base+"comments/", "", map[string]interface{}{"text": "x"}).Code)

	w := doJSON(r, "POST", base+"comments/", authorToken, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	comment := postComment(t, r, authorToken, base, "nice take")
	postComment(t, r, modToken, base, "agreed")

	assert.IsType(t, float64(0), comment["id"])
	assert.Equal(t, "bob", comment["author"])
	assert.NotEmpty(t, comment["pub_date"])

	// wrong parents 404
	assert.Equal(t, http.StatusNotFound, doJSON(r, "POST", fmt.Sprintf("/api/v1/titles/%d/reviews/999/comments/", first), authorToken, map[string]interface{}{"text": "x"}).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, "GET", "/api/v1/titles/999/reviews/1/comments/", "", nil).Code)

	w = doJSON(r, "GET", base+"comments/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.EqualValues(t, 2, env.Count)
	assert.Equal(t, "nice take", env.Results[0]["text"])

	commentPath := fmt.Sprintf("%scomments/%d/", base, int(comment["id"].(float64)))

	w = doJSON(r, "GET", commentPath, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nice take", decodeObject(t, w)["text"])

	// ownership rules mirror reviews
	assert.Equal(t, http.StatusForbidden, doJSON(r, "PATCH", commentPath, otherToken, map[string]interface{}{"text": "x"}).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(r, "DELETE", commentPath, otherToken, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(r, "PATCH", commentPath, "", map[string]interface{}{"text": "x"}).Code)

	w = doJSON(r, "PATCH", commentPath, authorToken, map[string]interface{}{"text": "edited take"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "edited take", decodeObject(t, w)["text"])

	w = doJSON(r, "PATCH", commentPath, modToken, map[string]interface{}{"text": "moderated"})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNoContent, doJSON(r, "DELETE", commentPath, adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, "GET", commentPath, "", nil).Code)
}

func TestDeletingReviewCascadesToComments(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin", "admin")
	adminToken := tokenFor(t, admin)
	first, _ := seedTitles(t, r, adminToken)

	review := postReview(t, r, adminToken, first, "the review", 5)
	base := fmt.Sprintf("/api/v1/titles/%d/reviews/%d/", first, int(review["id"].(float64)))
	postComment(t, r, adminToken, base, "one")
	postComment(t, r, adminToken, base, "two")

	assert.Equal(t, http.StatusNoContent, doJSON(r, "DELETE", base, adminToken, nil).Code)

	var count int64
	database.DB.Model(&reviews.Comment{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
