package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-student-registry/internal/app"
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/MKhiriev/go-student-registry/internal/store"
	"github.com/MKhiriev/go-student-registry/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order; more specific errors come first.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{validators.ErrInvalidID, errorResponse{http.StatusBadRequest, app.MsgInvalidStudentID}},
	{ErrInvalidStudentID, errorResponse{http.StatusBadRequest, app.MsgInvalidStudentID}},
	{validators.ErrIncompleteStudent, errorResponse{http.StatusBadRequest, app.MsgIncompleteData}},
	{ErrMalformedJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrNIMAlreadyExists, errorResponse{http.StatusConflict, app.MsgNIMAlreadyExists}},
	{store.ErrStudentNotFound, errorResponse{http.StatusNotFound, app.MsgStudentNotFound}},

	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingStatement, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRows, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
