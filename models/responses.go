package models

import "encoding/json"

// Response is a raw reply of the collection endpoint as seen by the client.
//
// Status is always the HTTP status code that was received. Payload is the
// decoded JSON body, or nil when the body was empty (or was not JSON on a
// non-2xx status).
type Response struct {
	Status  int
	Payload json.RawMessage
}

// IsSuccess reports whether Status is in the 2xx range.
func (r Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// MessageResponse is the JSON body the server uses for errors and for
// acknowledgements that carry no record, e.g. {"message": "not found"}.
type MessageResponse struct {
	Message string    `json:"message"`
	ID      StudentID `json:"id,omitempty"`
}
