package myflix

import "errors"

// userFacingMessage is the single message shown to callers for any transport
// failure. Network errors and non-2xx responses alike collapse into it; the
// underlying detail is logged and never surfaced.
const userFacingMessage = "Something bad happened; please try again later."

// Common errors returned by the myFlix client.
var (
	// ErrRequestFailed is returned for every network or HTTP failure.
	ErrRequestFailed = errors.New(userFacingMessage)

	// ErrMalformedResponse indicates the server returned a body that could
	// not be decoded into the expected shape.
	ErrMalformedResponse = errors.New("malformed response from myFlix API")
)
