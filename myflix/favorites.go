package myflix

import (
	"context"
	"net/http"
	"net/url"
)

// AddFavorite marks a movie as favorite. The cached favorites set is updated
// and persisted before the request goes out, so IsFavorite reflects the
// change immediately. If the request then fails, the local insert is rolled
// back — but only when the insert actually changed membership, so a failed
// re-add of an already-favorite movie never evicts it.
//
// The server answers these endpoints with a plain confirmation string, not
// JSON; the body is logged and otherwise ignored.
func (c *Client) AddFavorite(ctx context.Context, movieID string) error {
	added, err := c.session.AddFavorite(movieID)
	if err != nil {
		c.logger.Warn().Err(err).Str("movie_id", movieID).Msg("Failed to persist favorites update")
	}

	path := "users/" + url.PathEscape(c.session.Username()) + "/movies/" + url.PathEscape(movieID)

	body, err := c.doRequest(ctx, http.MethodPost, path, nil, true)
	if err != nil {
		if added {
			if _, rbErr := c.session.RemoveFavorite(movieID); rbErr != nil {
				c.logger.Warn().Err(rbErr).Str("movie_id", movieID).Msg("Failed to roll back favorites update")
			}
		}
		return err
	}

	c.logger.Debug().Str("movie_id", movieID).Str("response", string(body)).Msg("Added favorite")
	return nil
}

// RemoveFavorite unmarks a favorite movie, symmetrically to AddFavorite:
// optimistic local removal first, rollback on request failure. Removing an id
// that is not in the cached set is a local no-op, though the request is still
// sent.
func (c *Client) RemoveFavorite(ctx context.Context, movieID string) error {
	removed, err := c.session.RemoveFavorite(movieID)
	if err != nil {
		c.logger.Warn().Err(err).Str("movie_id", movieID).Msg("Failed to persist favorites update")
	}

	path := "users/" + url.PathEscape(c.session.Username()) + "/movies/" + url.PathEscape(movieID)

	body, err := c.doRequest(ctx, http.MethodDelete, path, nil, true)
	if err != nil {
		if removed {
			if _, rbErr := c.session.AddFavorite(movieID); rbErr != nil {
				c.logger.Warn().Err(rbErr).Str("movie_id", movieID).Msg("Failed to roll back favorites update")
			}
		}
		return err
	}

	c.logger.Debug().Str("movie_id", movieID).Str("response", string(body)).Msg("Removed favorite")
	return nil
}

// IsFavorite reports whether the cached favorites set contains movieID.
// Purely local, no network access.
func (c *Client) IsFavorite(movieID string) bool {
	return c.session.IsFavorite(movieID)
}
