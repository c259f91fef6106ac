package myflix

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/adenw/flixctl/session"
)

var validate = validator.New()

// LoginResponse is the body of a successful POST login.
type LoginResponse struct {
	User  session.User `json:"user"`
	Token string       `json:"token"`
}

// Login authenticates against the API and, on success, persists the returned
// token and profile as the resident session.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	if err := validate.Struct(creds); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	body, err := c.doRequest(ctx, http.MethodPost, "login", creds, false)
	if err != nil {
		return nil, err
	}

	var result LoginResponse
	if err := c.decodeBody(body, &result); err != nil {
		return nil, err
	}

	if err := c.session.Set(session.Session{Token: result.Token, User: result.User}); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	c.logger.Debug().Str("username", result.User.Username).Msg("Logged in")
	return &result, nil
}

// Register creates a new account. It does not log the new user in.
func (c *Client) Register(ctx context.Context, reg Registration) (*session.User, error) {
	if err := validate.Struct(reg); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}

	body, err := c.doRequest(ctx, http.MethodPost, "users", reg, false)
	if err != nil {
		return nil, err
	}

	var user session.User
	if err := c.decodeBody(body, &user); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("username", user.Username).Msg("Registered new user")
	return &user, nil
}

// GetUser fetches the authenticated user's profile. The username comes from
// the cached session; when anonymous the path is built from the empty
// username and the server rejects the call.
func (c *Client) GetUser(ctx context.Context) (*session.User, error) {
	path := "users/" + url.PathEscape(c.session.Username())

	body, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}

	var user session.User
	if err := c.decodeBody(body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetFavorites re-fetches the full profile and projects the favorites field.
func (c *Client) GetFavorites(ctx context.Context) ([]string, error) {
	user, err := c.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	return user.FavoriteMovies, nil
}

// UpdateUser replaces the server-side profile and returns the updated one.
// The resident session is not refreshed here; the caller saves the returned
// profile back into the store once it has acted on the result.
func (c *Client) UpdateUser(ctx context.Context, update ProfileUpdate) (*session.User, error) {
	if err := validate.Struct(update); err != nil {
		return nil, fmt.Errorf("invalid profile update: %w", err)
	}

	path := "users/" + url.PathEscape(c.session.Username())

	body, err := c.doRequest(ctx, http.MethodPut, path, update, true)
	if err != nil {
		return nil, err
	}

	var user session.User
	if err := c.decodeBody(body, &user); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("username", user.Username).Msg("Updated profile")
	return &user, nil
}

// DeleteUser removes the account server-side. The resident session is left
// for the caller to clear.
func (c *Client) DeleteUser(ctx context.Context) error {
	path := "users/" + url.PathEscape(c.session.Username())

	if _, err := c.doRequest(ctx, http.MethodDelete, path, nil, true); err != nil {
		return err
	}

	c.logger.Debug().Str("username", c.session.Username()).Msg("Deleted account")
	return nil
}
