package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-student-registry/internal/app"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
)

// withAccessKey rejects requests whose X-API-Key header does not match the
// configured key with 401 and a {"message"} body.
func (h *Handler) withAccessKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get(app.AccessKeyHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.accessKey)) != 1 {
			logger.FromRequest(r).Err(ErrInvalidAccessKey).Str("remote", r.RemoteAddr).Send()
			utils.WriteMessage(w, app.MsgAccessDenied, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
