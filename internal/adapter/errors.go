package adapter

import "errors"

var (
	// ErrTransport means the request produced no HTTP response.
	ErrTransport = errors.New("no response from server")
	// ErrProtocol means a success response could not be decoded as JSON.
	ErrProtocol = errors.New("malformed response body")
	// ErrInvalidBaseURL is returned by the constructor for unusable addresses.
	ErrInvalidBaseURL = errors.New("invalid base URL")
)
