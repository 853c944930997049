package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"bloghub/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPoliciesOverHTTP(t *testing.T) {
	env := newAPIEnv(t)
	alice := env.registerAndVerify(t, "a@x.com", "alice1", "Str0ng!pass")
	bob := env.registerAndVerify(t, "b@x.com", "bobby1", "Str0ng!pass")
	aliceToken := env.login(t, "a@x.com", "Str0ng!pass")
	bobToken := env.login(t, "b@x.com", "Str0ng!pass")

	// self-only: alice cannot update bob's profile
	w := env.putJSON(fmt.Sprintf("/api/v1/users/profile/%d", bob.ID), aliceToken, gin.H{"bio": "hacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// alice can update her own
	w = env.putJSON(fmt.Sprintf("/api/v1/users/profile/%d", alice.ID), aliceToken, gin.H{"bio": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	// admin listing is closed to plain users
	assert.Equal(t, http.StatusForbidden, env.get("/api/v1/users/profile", aliceToken).Code)
	assert.Equal(t, http.StatusUnauthorized, env.get("/api/v1/users/profile", "").Code)

	// self-or-admin: bob cannot delete alice, an admin can delete bob
	assert.Equal(t, http.StatusForbidden, env.delete(fmt.Sprintf("/api/v1/users/profile/%d", alice.ID), bobToken).Code)

	env.promoteAdmin(t, alice.ID)
	adminToken := env.login(t, "a@x.com", "Str0ng!pass")
	assert.Equal(t, http.StatusOK, env.get("/api/v1/users/profile", adminToken).Code)
	assert.Equal(t, http.StatusOK, env.delete(fmt.Sprintf("/api/v1/users/profile/%d", bob.ID), adminToken).Code)
}

func TestPostLifecycleOverHTTP(t *testing.T) {
	env := newAPIEnv(t)
	alice := env.registerAndVerify(t, "a@x.com", "alice1", "Str0ng!pass")
	bob := env.registerAndVerify(t, "b@x.com", "bobby1", "Str0ng!pass")
	aliceToken := env.login(t, "a@x.com", "Str0ng!pass")
	bobToken := env.login(t, "b@x.com", "Str0ng!pass")
	_ = alice

	// creation needs a token
	w := env.multipartPost(t, http.MethodPost, "/api/v1/posts", "", map[string]string{
		"title": "my post", "description": "a description long enough", "category": "news",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.multipartPost(t, http.MethodPost, "/api/v1/posts", aliceToken, map[string]string{
		"title": "my post", "description": "a description long enough", "category": "news",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post model.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.NotEmpty(t, post.ImageURL)

	// public read
	assert.Equal(t, http.StatusOK, env.get(fmt.Sprintf("/api/v1/posts/%d", post.ID), "").Code)
	assert.Equal(t, http.StatusNotFound, env.get("/api/v1/posts/99999", "").Code)

	// ownership is checked against the stored record, not the path
	w = env.putJSON(fmt.Sprintf("/api/v1/posts/%d", post.ID), bobToken, gin.H{"title": "stolen"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// like toggle twice restores the original set
	w = env.putJSON(fmt.Sprintf("/api/v1/posts/like/%d", post.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var liked model.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	require.Len(t, liked.Likes, 1)
	assert.Equal(t, bob.ID, liked.Likes[0].UserID)

	w = env.putJSON(fmt.Sprintf("/api/v1/posts/like/%d", post.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var unliked model.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unliked))
	assert.Empty(t, unliked.Likes)

	// owner-or-admin delete: bob cannot, admin bob can
	assert.Equal(t, http.StatusForbidden, env.delete(fmt.Sprintf("/api/v1/posts/%d", post.ID), bobToken).Code)
	env.promoteAdmin(t, bob.ID)
	adminToken := env.login(t, "b@x.com", "Str0ng!pass")
	assert.Equal(t, http.StatusOK, env.delete(fmt.Sprintf("/api/v1/posts/%d", post.ID), adminToken).Code)
}

func TestCommentAndCategoryRoutes(t *testing.T) {
	env := newAPIEnv(t)
	alice := env.registerAndVerify(t, "a@x.com", "alice1", "Str0ng!pass")
	aliceToken := env.login(t, "a@x.com", "Str0ng!pass")

	w := env.multipartPost(t, http.MethodPost, "/api/v1/posts", aliceToken, map[string]string{
		"title": "my post", "description": "a description long enough", "category": "news",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var post model.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

	// comment carries the username snapshot
	w = env.postJSON("/api/v1/comments", aliceToken, gin.H{"post_id": post.ID, "text": "first!"})
	require.Equal(t, http.StatusCreated, w.Code)
	var comment model.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
	assert.Equal(t, "alice1", comment.Username)

	// the admin comment listing is closed to plain users
	assert.Equal(t, http.StatusForbidden, env.get("/api/v1/comments", aliceToken).Code)

	// categories: admin-gated writes, public reads
	w = env.postJSON("/api/v1/categories", aliceToken, gin.H{"title": "Tech"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	env.promoteAdmin(t, alice.ID)
	adminToken := env.login(t, "a@x.com", "Str0ng!pass")
	w = env.postJSON("/api/v1/categories", adminToken, gin.H{"title": "Tech"})
	require.Equal(t, http.StatusCreated, w.Code)
	var category model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
	assert.Equal(t, "tech", category.Title)

	assert.Equal(t, http.StatusOK, env.get("/api/v1/categories", "").Code)
	assert.Equal(t, http.StatusOK, env.delete(fmt.Sprintf("/api/v1/categories/%d", category.ID), adminToken).Code)
	assert.Equal(t, http.StatusNotFound, env.delete(fmt.Sprintf("/api/v1/categories/%d", category.ID), adminToken).Code)
}
