package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-student-registry/internal/app"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
)

// newTestHandler создаёт Handler с nop-логгером и ключом "secret".
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), accessKey: "secret"}
}

// makeLoggedRequest creates a request whose context carries a logger
// writing into buf, the way withTraceID does.
func makeLoggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// ── withTraceID ──────────────────────────────────────────────────────────────

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := newTestHandler()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetTraceIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/mahasiswa", nil)
	req.Header.Set(app.TraceIDHeader, "my-trace")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "my-trace", rr.Header().Get(app.TraceIDHeader))
	assert.Equal(t, "my-trace", seen)
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := newTestHandler()

	rr := httptest.NewRecorder()
	h.withTraceID(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/mahasiswa", nil))

	_, err := uuid.Parse(rr.Header().Get(app.TraceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_ConcurrentRequestsGetDistinctIDs(t *testing.T) {
	h := newTestHandler()
	mw := h.withTraceID(okHandler)

	const n = 50
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rr := httptest.NewRecorder()
			mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			ids[i] = rr.Header().Get(app.TraceIDHeader)
		}(i)
	}
	wg.Wait()

	unique := make(map[string]struct{}, n)
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, n)
}

// ── withLogging ──────────────────────────────────────────────────────────────

func TestWithLogging_WritesAccessLine(t *testing.T) {
	h := newTestHandler()
	var buf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	})
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodPost, "/mahasiswa", &buf))

	out := buf.String()
	for _, want := range []string{`"method":"POST"`, `"uri":"/mahasiswa"`, `"status":201`, `"size":8`, `"duration":`} {
		assert.Contains(t, out, want)
	}
}

func TestWithLogging_NoStatusWritten_LogsOK(t *testing.T) {
	h := newTestHandler()
	var buf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/mahasiswa", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

// ── withAccessKey ────────────────────────────────────────────────────────────

func TestWithAccessKey(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"valid key", "secret", http.StatusOK},
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "guess", http.StatusUnauthorized},
		{"prefix of key", "sec", http.StatusUnauthorized},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/mahasiswa", nil)
			if tt.key != "" {
				req.Header.Set(app.AccessKeyHeader, tt.key)
			}
			rr := httptest.NewRecorder()
			h.withAccessKey(okHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"message":"access denied"}`, rr.Body.String())
			}
		})
	}
}

// ── CheckHTTPMethod ──────────────────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/mahasiswa", okHandler)
	router.Post("/mahasiswa", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) })
	router.Delete("/mahasiswa/{id}", okHandler)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/mahasiswa", http.StatusOK},
		{http.MethodPost, "/mahasiswa", http.StatusCreated},
		{http.MethodDelete, "/mahasiswa/1", http.StatusOK},
		{http.MethodPut, "/mahasiswa", http.StatusNotFound},
		{http.MethodPatch, "/mahasiswa", http.StatusNotFound},
		{http.MethodGet, "/mahasiswa/1", http.StatusNotFound},
		{http.MethodGet, "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ── responseWriter ───────────────────────────────────────────────────────────

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusConflict)
	w.WriteHeader(http.StatusOK)
	n, err := w.Write([]byte("dup"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusConflict, w.status)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, 3, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte(strings.Repeat("x", 10)))
	_, _ = w.Write([]byte("yy"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 12, w.size)
}
