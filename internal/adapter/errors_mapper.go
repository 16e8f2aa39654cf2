package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-student-registry/models"
	"github.com/go-resty/resty/v2"
)

func mapTransportError(method, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
}

// decodeResponse turns a received resty response into a models.Response.
//
// Surrounding whitespace is ignored. An empty body yields a nil payload.
// A body that is not JSON is an error only on 2xx; for other statuses the
// caller interprets the status alone, so the payload is dropped.
func decodeResponse(resp *resty.Response) (models.Response, error) {
	out := models.Response{Status: resp.StatusCode()}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return out, nil
	}

	if !json.Valid(body) {
		if out.IsSuccess() {
			return out, fmt.Errorf("%w: status %d, %d bytes of non-JSON body", ErrProtocol, out.Status, len(body))
		}
		return out, nil
	}

	out.Payload = json.RawMessage(bytes.Clone(body))
	return out, nil
}
