package myflix

import (
	"context"

	"github.com/adenw/flixctl/session"
)

// API defines the interface for myFlix operations.
type API interface {
	// Login authenticates and persists the resulting session
	Login(ctx context.Context, creds Credentials) (*LoginResponse, error)

	// Register creates a new account
	Register(ctx context.Context, reg Registration) (*session.User, error)

	// ListMovies retrieves the full movie catalog
	ListMovies(ctx context.Context) ([]Movie, error)

	// GetMovie looks up a single movie by exact title
	GetMovie(ctx context.Context, title string) (*Movie, error)

	// GetDirector fetches a director's bio by name
	GetDirector(ctx context.Context, name string) (*Director, error)

	// GetGenre fetches a genre's description by name
	GetGenre(ctx context.Context, name string) (*Genre, error)

	// GetUser fetches the authenticated user's profile
	GetUser(ctx context.Context) (*session.User, error)

	// GetFavorites re-fetches the profile and projects the favorites field
	GetFavorites(ctx context.Context) ([]string, error)

	// AddFavorite marks a movie as favorite, optimistically
	AddFavorite(ctx context.Context, movieID string) error

	// RemoveFavorite unmarks a favorite movie, optimistically
	RemoveFavorite(ctx context.Context, movieID string) error

	// IsFavorite reports cached favorites membership without network access
	IsFavorite(movieID string) bool

	// UpdateUser replaces the server-side profile
	UpdateUser(ctx context.Context, update ProfileUpdate) (*session.User, error)

	// DeleteUser removes the account server-side
	DeleteUser(ctx context.Context) error
}
