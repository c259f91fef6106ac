package myflix

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavorite(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		// The server answers with a plain confirmation string, not JSON.
		w.Write([]byte("movie m1 was added to favorites"))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	loggedIn(t, store)

	require.NoError(t, client.AddFavorite(context.Background(), "m1"))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/users/ana/movies/m1", path)
	assert.True(t, client.IsFavorite("m1"))

	user, _ := store.User()
	assert.Equal(t, []string{"m1"}, user.FavoriteMovies)
}

func TestAddFavoriteOptimistic(t *testing.T) {
	// The cached set already holds the id while the request is in flight.
	var favoriteDuringRequest bool
	var client *Client
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		favoriteDuringRequest = client.IsFavorite("m1")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	loggedIn(t, store)

	require.NoError(t, client.AddFavorite(context.Background(), "m1"))
	assert.True(t, favoriteDuringRequest)
}

func TestAddFavoriteRollbackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	loggedIn(t, store)

	err := client.AddFavorite(context.Background(), "m1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)

	// The optimistic insert is reverted.
	assert.False(t, client.IsFavorite("m1"))
}

func TestAddFavoriteFailedReAddKeepsMembership(t *testing.T) {
	// Re-adding an id that was already a favorite must not evict it when the
	// request fails: the rollback only undoes an insert that changed the set.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	loggedIn(t, store, "m1")

	err := client.AddFavorite(context.Background(), "m1")
	require.Error(t, err)
	assert.True(t, client.IsFavorite("m1"))
}

func TestAddFavoriteIdempotentMembership(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	loggedIn(t, store, "m1")

	// Adding an id already present leaves the set unchanged in content,
	// though the request is still sent.
	require.NoError(t, client.AddFavorite(context.Background(), "m1"))
	assert.Equal(t, 1, requests)

	user, _ := store.User()
	assert.Equal(t, []string{"m1"}, user.FavoriteMovies)
}

func TestRemoveFavorite(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.Write([]byte("movie m1 was removed from favorites"))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	loggedIn(t, store, "m1", "m2")

	require.NoError(t, client.RemoveFavorite(context.Background(), "m1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/users/ana/movies/m1", path)
	assert.False(t, client.IsFavorite("m1"))
	assert.True(t, client.IsFavorite("m2"))
}

func TestRemoveFavoriteAbsentID(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	loggedIn(t, store, "m1")

	// Removing an absent id leaves the set unchanged and does not error.
	require.NoError(t, client.RemoveFavorite(context.Background(), "m9"))
	assert.Equal(t, 1, requests)

	user, _ := store.User()
	assert.Equal(t, []string{"m1"}, user.FavoriteMovies)
}

func TestRemoveFavoriteRollbackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	loggedIn(t, store, "m1")

	err := client.RemoveFavorite(context.Background(), "m1")
	require.Error(t, err)

	// The optimistic removal is reverted.
	assert.True(t, client.IsFavorite("m1"))
}

func TestToggleSequence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL)
	loggedIn(t, store)

	ctx := context.Background()
	require.NoError(t, client.AddFavorite(ctx, "m1"))
	assert.True(t, client.IsFavorite("m1"))

	require.NoError(t, client.RemoveFavorite(ctx, "m1"))
	assert.False(t, client.IsFavorite("m1"))
}

func TestIsFavoriteIsLocal(t *testing.T) {
	// No server at all: the predicate never touches the network.
	client, store := newTestClient(t, "http://localhost:1")
	loggedIn(t, store, "m1")

	assert.True(t, client.IsFavorite("m1"))
	assert.False(t, client.IsFavorite("m2"))
}
