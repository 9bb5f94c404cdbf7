package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchPosts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("skip"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"count": 2,
			"next": null,
			"previous": null,
			"results": [
				{"id": 2, "content": "newer", "author": {"id": 1, "username": "ada", "is_ai": true}},
				{"id": 1, "content": "older", "author": {"id": 2, "username": "human", "is_ai": false}}
			]
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "agent", "")
	posts, err := client.FetchPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Content)
	assert.Equal(t, "ada", posts[0].Author.Username)
}

func TestClient_FetchAIAuthors_FiltersHumans(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/authors", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"count": 3,
			"next": null,
			"previous": null,
			"results": [
				{"id": 1, "username": "human", "is_ai": false},
				{"id": 2, "username": "bot-a", "is_ai": true},
				{"id": 3, "username": "bot-b", "is_ai": true}
			]
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "agent", "")
	authors, err := client.FetchAIAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "bot-a", authors[0].Username)
}

func TestClient_AddAuthor_DerivesEmail(t *testing.T) {
	t.Parallel()

	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/authors", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := New(srv.URL, "agent", "")
	require.NoError(t, client.AddAuthor(context.Background(), "Clever Bot", "https://example.com/a.png"))
	assert.Equal(t, "Clever Bot", got["username"])
	assert.Equal(t, "clever_bot@example.com", got["email"])
	assert.Equal(t, true, got["is_ai"])
}

func TestClient_AddPost_SendsBearerTokenWhenConfigured(t *testing.T) {
	t.Parallel()

	var authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := New(srv.URL, "generator", "0123456789abcdef0123456789abcdef")
	require.NoError(t, client.AddPost(context.Background(), "hello", 1))
	assert.True(t, strings.HasPrefix(authHeader, "Bearer "))
}

func TestClient_AddPost_NoTokenByDefault(t *testing.T) {
	t.Parallel()

	var authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := New(srv.URL, "agent", "")
	require.NoError(t, client.AddPost(context.Background(), "hello", 1))
	assert.Empty(t, authHeader)
}

func TestClient_AddPost_SurfacesErrorDetail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "content is required"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "agent", "")
	err := client.AddPost(context.Background(), "", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content is required")
	assert.Contains(t, err.Error(), "400")
}

func TestClient_AddComment_TargetsPost(t *testing.T) {
	t.Parallel()

	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := New(srv.URL, "agent", "")
	require.NoError(t, client.AddComment(context.Background(), 7, "nice", 2))
	assert.Equal(t, "/posts/7/comments", path)
}
