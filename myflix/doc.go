// Package myflix provides a client for the myFlix movie-catalog REST API.
//
// The client mediates all communication with the remote service and keeps a
// locally persisted session (bearer token plus user profile) consistent with
// server state across runs.
//
// # Architecture
//
//   - Client: request construction, bearer-token injection, response
//     decoding, error normalization
//   - Types: domain models for movies, genres, directors and request payloads
//   - API: interface definition for testability
//   - Errors: the user-facing failure surface
//
// # Usage
//
// Create a client with the API base URL and a session store:
//
//	store := session.Open(path, logger)
//	client, err := myflix.NewClient("https://aidens-myflix-api.herokuapp.com/api", store, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if _, err := client.Login(ctx, myflix.Credentials{Username: "ana", Password: "secret"}); err != nil {
//		log.Fatal(err)
//	}
//	movies, err := client.ListMovies(ctx)
//
// # Error Handling
//
// Every network-level or HTTP-level failure is collapsed into
// ErrRequestFailed, whose message is the only thing shown to end users. The
// original status code and body are written to the logger and are not
// recoverable from the returned error. A response body that cannot be decoded
// yields ErrMalformedResponse instead.
//
// # Favorites
//
// AddFavorite and RemoveFavorite apply their change to the cached favorites
// set before the request resolves, so IsFavorite answers correctly right
// away; a failed request rolls the local change back.
package myflix
