package myflix

import (
	"context"
	"net/http"
	"net/url"
)

// ListMovies retrieves the full movie catalog.
func (c *Client) ListMovies(ctx context.Context) ([]Movie, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "movies", nil, true)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	if err := c.decodeBody(body, &movies); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(movies)).Msg("Retrieved movies from myFlix")
	return movies, nil
}

// GetMovie looks up a single movie by exact title.
func (c *Client) GetMovie(ctx context.Context, title string) (*Movie, error) {
	path := "movies/title/" + url.PathEscape(title)

	body, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}

	var movie Movie
	if err := c.decodeBody(body, &movie); err != nil {
		return nil, err
	}

	return &movie, nil
}

// GetDirector fetches a director's bio by name.
func (c *Client) GetDirector(ctx context.Context, name string) (*Director, error) {
	path := "movies/director_description/" + url.PathEscape(name)

	body, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}

	var director Director
	if err := c.decodeBody(body, &director); err != nil {
		return nil, err
	}

	return &director, nil
}

// GetGenre fetches a genre's description by name.
func (c *Client) GetGenre(ctx context.Context, name string) (*Genre, error) {
	path := "movies/genre_description/" + url.PathEscape(name)

	body, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}

	var genre Genre
	if err := c.decodeBody(body, &genre); err != nil {
		return nil, err
	}

	return &genre, nil
}
