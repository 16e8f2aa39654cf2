// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-student-registry/internal/adapter"
	"github.com/MKhiriev/go-student-registry/internal/app"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/mock"
	"github.com/MKhiriev/go-student-registry/internal/validators"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Recording sink
// ─────────────────────────────────────────────

type sinkEvent struct {
	kind     string // render | failure | notify | busy
	students []models.Student
	message  string
	severity models.Severity
	busy     bool
}

type recordingSink struct {
	mu     sync.Mutex
	events []sinkEvent
}

func (r *recordingSink) RenderSnapshot(students []models.Student) {
	r.add(sinkEvent{kind: "render", students: students})
}

func (r *recordingSink) RenderConnectivityFailure() {
	r.add(sinkEvent{kind: "failure"})
}

func (r *recordingSink) Notify(message string, severity models.Severity) {
	r.add(sinkEvent{kind: "notify", message: message, severity: severity})
}

func (r *recordingSink) SetBusy(busy bool) {
	r.add(sinkEvent{kind: "busy", busy: busy})
}

func (r *recordingSink) add(e sinkEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingSink) all() []sinkEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sinkEvent(nil), r.events...)
}

func (r *recordingSink) kinds() []string {
	var out []string
	for _, e := range r.all() {
		if e.kind == "busy" {
			out = append(out, fmt.Sprintf("busy:%t", e.busy))
			continue
		}
		out = append(out, e.kind)
	}
	return out
}

func (r *recordingSink) ofKind(kind string) []sinkEvent {
	var out []sinkEvent
	for _, e := range r.all() {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (r *recordingSink) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// assertBusyBalanced checks that every SetBusy(true) is matched by a later
// SetBusy(false).
func assertBusyBalanced(t *testing.T, sink *recordingSink) {
	t.Helper()
	depth := 0
	for _, e := range sink.ofKind("busy") {
		if e.busy {
			depth++
		} else {
			depth--
		}
		require.GreaterOrEqual(t, depth, 0, "SetBusy(false) without matching SetBusy(true)")
	}
	assert.Equal(t, 0, depth, "busy indicator left on")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestSyncService(t *testing.T) (*studentSyncService, *mock.MockCollectionAdapter, *recordingSink) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock.NewMockCollectionAdapter(ctrl)
	sink := &recordingSink{}
	svc := NewStudentSyncService(m, validators.NewStudentValidator(), sink, logger.Nop()).(*studentSyncService)
	return svc, m, sink
}

func jsonPayload(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func okList(t *testing.T, students ...models.Student) models.Response {
	if students == nil {
		students = []models.Student{}
	}
	return models.Response{Status: http.StatusOK, Payload: jsonPayload(t, students)}
}

func expectList(m *mock.MockCollectionAdapter, resp models.Response, err error) *gomock.Call {
	return m.EXPECT().Send(gomock.Any(), http.MethodGet, app.CollectionPath, nil).Return(resp, err)
}

var (
	alice = models.Student{ID: "1", NIM: "A1", Name: "Alice", Major: "CS"}
	bob   = models.Student{ID: "2", NIM: "B2", Name: "Bob", Major: "Math"}
)

// ── List ─────────────────────────────────────────────────────────────────────

func TestList_Success_ReplacesSnapshotAndRenders(t *testing.T) {
	svc, m, sink := newTestSyncService(t)
	expectList(m, okList(t, alice, bob), nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Student{alice, bob}, got)
	assert.Equal(t, []models.Student{alice, bob}, svc.Snapshot())
	assert.Equal(t, []string{"busy:true", "render", "busy:false"}, sink.kinds())
	assert.Equal(t, []models.Student{alice, bob}, sink.ofKind("render")[0].students)
}

func TestList_EmptyCollection_RendersEmptyState(t *testing.T) {
	svc, m, sink := newTestSyncService(t)
	expectList(m, okList(t), nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	renders := sink.ofKind("render")
	require.Len(t, renders, 1)
	assert.NotNil(t, renders[0].students, "empty collection renders as an empty, non-nil slice")
	assert.Empty(t, sink.ofKind("failure"))
	assert.Empty(t, sink.ofKind("notify"))
}

func TestList_NullOrEmptyBody_IsEmptyCollection(t *testing.T) {
	for name, payload := range map[string]json.RawMessage{
		"null":  json.RawMessage("null"),
		"empty": nil,
	} {
		t.Run(name, func(t *testing.T) {
			svc, m, _ := newTestSyncService(t)
			expectList(m, models.Response{Status: http.StatusOK, Payload: payload}, nil)

			got, err := svc.List(context.Background())

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestList_Failures_KeepSnapshotAndRenderFailure(t *testing.T) {
	tests := []struct {
		name     string
		resp     models.Response
		err      error
		wantKind ErrorKind
	}{
		{"server error", models.Response{Status: http.StatusInternalServerError}, nil, KindConnectivity},
		{"unauthorized", models.Response{Status: http.StatusUnauthorized, Payload: json.RawMessage(`{"message":"Access denied"}`)}, nil, KindConnectivity},
		{"transport", models.Response{}, fmt.Errorf("%w: dial tcp: refused", adapter.ErrTransport), KindConnectivity},
		{"protocol", models.Response{Status: http.StatusOK}, fmt.Errorf("%w: not json", adapter.ErrProtocol), KindProtocol},
		{"wrong shape", models.Response{Status: http.StatusOK, Payload: json.RawMessage(`{"id":1}`)}, nil, KindProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, sink := newTestSyncService(t)
			gomock.InOrder(
				expectList(m, okList(t, alice), nil),
				expectList(m, tt.resp, tt.err),
			)

			_, err := svc.List(context.Background())
			require.NoError(t, err)
			sink.reset()

			got, err := svc.List(context.Background())

			require.Error(t, err)
			assert.Nil(t, got)
			kind, ok := KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, kind)

			assert.Equal(t, []models.Student{alice}, svc.Snapshot(), "snapshot untouched on failure")
			assert.Equal(t, []string{"busy:true", "notify", "failure", "busy:false"}, sink.kinds())
			assert.Equal(t, models.SeverityError, sink.ofKind("notify")[0].severity)
			assert.Empty(t, sink.ofKind("render"))
		})
	}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreate_LocalValidation_NoNetwork(t *testing.T) {
	drafts := []models.StudentDraft{
		{NIM: "", Name: "Alice", Major: "CS"},
		{NIM: "A1", Name: "   ", Major: "CS"},
		{NIM: "A1", Name: "Alice", Major: "\t"},
		{},
	}

	for _, draft := range drafts {
		t.Run(fmt.Sprintf("%+v", draft), func(t *testing.T) {
			// no EXPECT on the adapter: any Send call fails the test
			svc, _, sink := newTestSyncService(t)

			_, err := svc.Create(context.Background(), draft)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, validators.ErrIncompleteStudent)
			assert.Equal(t, []string{"notify"}, sink.kinds())
			assert.Equal(t, app.MsgFieldsRequired, sink.ofKind("notify")[0].message)
		})
	}
}

func TestCreate_Success_NotifiesThenResyncs(t *testing.T) {
	svc, m, sink := newTestSyncService(t)
	created := models.Student{ID: "7", NIM: "A1", Name: "Alice", Major: "CS"}

	gomock.InOrder(
		m.EXPECT().
			Send(gomock.Any(), http.MethodPost, app.CollectionPath, models.StudentDraft{NIM: "A1", Name: "Alice", Major: "CS"}).
			Return(models.Response{Status: http.StatusCreated, Payload: json.RawMessage(`{"message":"ok","id":7}`)}, nil),
		expectList(m, okList(t, created), nil),
	)

	got, err := svc.Create(context.Background(), models.StudentDraft{NIM: " A1 ", Name: "Alice ", Major: " CS"})

	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, []models.Student{created}, svc.Snapshot())
	assert.Equal(t, []string{"busy:true", "notify", "render", "busy:false"}, sink.kinds())

	note := sink.ofKind("notify")[0]
	assert.Equal(t, models.SeveritySuccess, note.severity)
	assert.Equal(t, "Student added! ID: 7", note.message)
}

func TestCreate_Success_ResyncFails_StillSucceeds(t *testing.T) {
	svc, m, sink := newTestSyncService(t)

	gomock.InOrder(
		m.EXPECT().Send(gomock.Any(), http.MethodPost, app.CollectionPath, gomock.Any()).
			Return(models.Response{Status: http.StatusCreated, Payload: json.RawMessage(`{"id":3}`)}, nil),
		expectList(m, models.Response{}, fmt.Errorf("%w: reset", adapter.ErrTransport)),
	)

	got, err := svc.Create(context.Background(), models.StudentDraft{NIM: "A1", Name: "Alice", Major: "CS"})

	require.NoError(t, err, "the write happened")
	assert.Equal(t, models.StudentID("3"), got.ID)
	assert.Equal(t, []string{"busy:true", "notify", "notify", "failure", "busy:false"}, sink.kinds())

	notes := sink.ofKind("notify")
	assert.Equal(t, models.SeveritySuccess, notes[0].severity)
	assert.Equal(t, models.SeverityError, notes[1].severity)
	assert.Empty(t, svc.Snapshot())
}

func TestCreate_StatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		resp        models.Response
		wantKind    ErrorKind
		wantMessage string
	}{
		{
			name:        "duplicate nim",
			resp:        models.Response{Status: http.StatusConflict, Payload: json.RawMessage(`{"message":"NIM already exists"}`)},
			wantKind:    KindDuplicateKey,
			wantMessage: app.MsgDuplicateNIM,
		},
		{
			name:        "server validation",
			resp:        models.Response{Status: http.StatusBadRequest, Payload: json.RawMessage(`{"message":"Incomplete data"}`)},
			wantKind:    KindValidation,
			wantMessage: app.MsgIncompleteDraft,
		},
		{
			name:        "server error with message",
			resp:        models.Response{Status: http.StatusInternalServerError, Payload: json.RawMessage(`{"message":"db is down"}`)},
			wantKind:    KindServer,
			wantMessage: "db is down",
		},
		{
			name:        "server error without body",
			resp:        models.Response{Status: http.StatusBadGateway},
			wantKind:    KindServer,
			wantMessage: app.MsgSaveFailed,
		},
		{
			name:        "success without id",
			resp:        models.Response{Status: http.StatusCreated, Payload: json.RawMessage(`{"message":"ok"}`)},
			wantKind:    KindProtocol,
			wantMessage: app.MsgMalformedResponse,
		},
		{
			name:        "success without body",
			resp:        models.Response{Status: http.StatusCreated},
			wantKind:    KindProtocol,
			wantMessage: app.MsgMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, sink := newTestSyncService(t)
			// exactly one POST, no resync
			m.EXPECT().Send(gomock.Any(), http.MethodPost, app.CollectionPath, gomock.Any()).Return(tt.resp, nil).Times(1)

			_, err := svc.Create(context.Background(), models.StudentDraft{NIM: "A1", Name: "Alice", Major: "CS"})

			require.Error(t, err)
			var syncErr *SyncError
			require.ErrorAs(t, err, &syncErr)
			assert.Equal(t, tt.wantKind, syncErr.Kind)
			assert.Equal(t, tt.wantMessage, syncErr.Message)
			assert.Equal(t, tt.resp.Status, syncErr.Status)

			assert.Equal(t, []string{"busy:true", "notify", "busy:false"}, sink.kinds())
			assert.Equal(t, tt.wantMessage, sink.ofKind("notify")[0].message)
			assert.Equal(t, models.SeverityError, sink.ofKind("notify")[0].severity)
		})
	}
}

func TestCreate_TransportError_IsConnectivity(t *testing.T) {
	svc, m, sink := newTestSyncService(t)
	m.EXPECT().Send(gomock.Any(), http.MethodPost, app.CollectionPath, gomock.Any()).
		Return(models.Response{}, fmt.Errorf("%w: timeout", adapter.ErrTransport))

	_, err := svc.Create(context.Background(), models.StudentDraft{NIM: "A1", Name: "Alice", Major: "CS"})

	assert.ErrorIs(t, err, ErrConnectivity)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Empty(t, sink.ofKind("failure"), "mutations never render the list failure state")
	assertBusyBalanced(t, sink)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDelete_Success_NotifiesThenResyncs(t *testing.T) {
	svc, m, sink := newTestSyncService(t)

	gomock.InOrder(
		m.EXPECT().Send(gomock.Any(), http.MethodDelete, "/mahasiswa/5", nil).
			Return(models.Response{Status: http.StatusOK, Payload: json.RawMessage(`{"message":"Student deleted"}`)}, nil),
		expectList(m, okList(t, alice), nil),
	)

	err := svc.Delete(context.Background(), "5")

	require.NoError(t, err)
	assert.Equal(t, []string{"busy:true", "notify", "render", "busy:false"}, sink.kinds())
	assert.Equal(t, "Student deleted! ID: 5", sink.ofKind("notify")[0].message)
	assert.Equal(t, []models.Student{alice}, svc.Snapshot())
}

func TestDelete_StatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		resp        models.Response
		wantErr     error
		wantMessage string
	}{
		{"not found", models.Response{Status: http.StatusNotFound}, ErrNotFound, app.MsgNotFound},
		{"invalid id", models.Response{Status: http.StatusBadRequest}, ErrValidation, app.MsgInvalidID},
		{"server message", models.Response{Status: http.StatusServiceUnavailable, Payload: json.RawMessage(`{"message":"maintenance"}`)}, ErrServer, "maintenance"},
		{"server generic", models.Response{Status: http.StatusInternalServerError, Payload: json.RawMessage(`"oops"`)}, ErrServer, app.MsgDeleteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, sink := newTestSyncService(t)
			m.EXPECT().Send(gomock.Any(), http.MethodDelete, "/mahasiswa/9", nil).Return(tt.resp, nil).Times(1)

			err := svc.Delete(context.Background(), "9")

			assert.ErrorIs(t, err, tt.wantErr)
			var syncErr *SyncError
			require.ErrorAs(t, err, &syncErr)
			assert.Equal(t, tt.wantMessage, syncErr.Message)
			assert.Equal(t, []string{"busy:true", "notify", "busy:false"}, sink.kinds())
		})
	}
}

func TestDelete_Twice_SecondIsNotFound(t *testing.T) {
	svc, m, _ := newTestSyncService(t)

	gomock.InOrder(
		m.EXPECT().Send(gomock.Any(), http.MethodDelete, "/mahasiswa/1", nil).Return(models.Response{Status: http.StatusOK}, nil),
		expectList(m, okList(t), nil),
		m.EXPECT().Send(gomock.Any(), http.MethodDelete, "/mahasiswa/1", nil).Return(models.Response{Status: http.StatusNotFound}, nil),
	)

	require.NoError(t, svc.Delete(context.Background(), "1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "1"), ErrNotFound)
}

func TestDelete_BlankID_NoNetwork(t *testing.T) {
	for _, id := range []models.StudentID{"", "   "} {
		t.Run(fmt.Sprintf("%q", id), func(t *testing.T) {
			// no EXPECT on the adapter: any Send call fails the test
			svc, _, sink := newTestSyncService(t)

			err := svc.Delete(context.Background(), id)

			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, validators.ErrInvalidID)
			assert.Equal(t, []string{"notify"}, sink.kinds())
			assert.Equal(t, app.MsgInvalidID, sink.ofKind("notify")[0].message)
		})
	}
}

func TestDelete_IDIsEscapedAsOnePathSegment(t *testing.T) {
	tests := []struct {
		id   models.StudentID
		path string
	}{
		{"65a1b2", "/mahasiswa/65a1b2"},
		{"a/b", "/mahasiswa/a%2Fb"},
		{"x y?", "/mahasiswa/x%20y%3F"},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			svc, m, sink := newTestSyncService(t)
			gomock.InOrder(
				m.EXPECT().Send(gomock.Any(), http.MethodDelete, tt.path, nil).Return(models.Response{Status: http.StatusOK}, nil),
				expectList(m, okList(t), nil),
			)

			require.NoError(t, svc.Delete(context.Background(), tt.id))
			assert.Equal(t, "Student deleted! ID: "+tt.id.String(), sink.ofKind("notify")[0].message)
		})
	}
}

// ── Opaque ids ───────────────────────────────────────────────────────────────

func TestList_StringIDs(t *testing.T) {
	svc, m, sink := newTestSyncService(t)
	expectList(m, models.Response{
		Status:  http.StatusOK,
		Payload: json.RawMessage(`[{"id":"x1","nim":"A1","nama":"Alice","jurusan":"CS"},{"id":42,"nim":"B2","nama":"Bob","jurusan":"Math"}]`),
	}, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	want := []models.Student{
		{ID: "x1", NIM: "A1", Name: "Alice", Major: "CS"},
		{ID: "42", NIM: "B2", Name: "Bob", Major: "Math"},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, want, svc.Snapshot())
	assert.Equal(t, []string{"busy:true", "render", "busy:false"}, sink.kinds())
}

func TestList_NullID_IsProtocolError(t *testing.T) {
	svc, m, sink := newTestSyncService(t)
	expectList(m, models.Response{
		Status:  http.StatusOK,
		Payload: json.RawMessage(`[{"id":null,"nim":"A1","nama":"Alice","jurusan":"CS"}]`),
	}, nil)

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrProtocol)
	assert.Equal(t, []string{"busy:true", "notify", "failure", "busy:false"}, sink.kinds())
}

func TestCreate_StringID_ResyncsAndDeletesByIt(t *testing.T) {
	svc, m, sink := newTestSyncService(t)
	created := models.Student{ID: "65a1b2", NIM: "A1", Name: "Alice", Major: "CS"}

	gomock.InOrder(
		m.EXPECT().Send(gomock.Any(), http.MethodPost, app.CollectionPath, gomock.Any()).
			Return(models.Response{Status: http.StatusCreated, Payload: json.RawMessage(`{"id":"65a1b2"}`)}, nil),
		expectList(m, models.Response{
			Status:  http.StatusOK,
			Payload: json.RawMessage(`[{"id":"65a1b2","nim":"A1","nama":"Alice","jurusan":"CS"}]`),
		}, nil),
		m.EXPECT().Send(gomock.Any(), http.MethodDelete, "/mahasiswa/65a1b2", nil).
			Return(models.Response{Status: http.StatusOK}, nil),
		expectList(m, okList(t), nil),
	)

	got, err := svc.Create(context.Background(), models.StudentDraft{NIM: "A1", Name: "Alice", Major: "CS"})
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, []models.Student{created}, svc.Snapshot())
	assert.Equal(t, "Student added! ID: 65a1b2", sink.ofKind("notify")[0].message)

	require.NoError(t, svc.Delete(context.Background(), svc.Snapshot()[0].ID))
	assert.Empty(t, svc.Snapshot())
	assertBusyBalanced(t, sink)
}

// ── CheckConnection ──────────────────────────────────────────────────────────

func TestCheckConnection(t *testing.T) {
	tests := []struct {
		name         string
		resp         models.Response
		err          error
		wantErr      bool
		wantSeverity models.Severity
		wantMessage  string
	}{
		{"ok", okList(t, alice), nil, false, models.SeveritySuccess, app.MsgConnectionOK},
		{"non-2xx", models.Response{Status: http.StatusForbidden}, nil, true, models.SeverityError, app.MsgConnectionFailed},
		{"transport", models.Response{}, adapter.ErrTransport, true, models.SeverityError, app.MsgConnectionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, sink := newTestSyncService(t)
			expectList(m, tt.resp, tt.err)

			err := svc.CheckConnection(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConnectivity)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, []string{"busy:true", "notify", "busy:false"}, sink.kinds())
			assert.Equal(t, tt.wantSeverity, sink.ofKind("notify")[0].severity)
			assert.Equal(t, tt.wantMessage, sink.ofKind("notify")[0].message)
			assert.Empty(t, svc.Snapshot(), "connection check never touches the snapshot")
		})
	}
}

// ── Snapshot / serialization ─────────────────────────────────────────────────

func TestSnapshot_ReturnsCopy(t *testing.T) {
	svc, m, _ := newTestSyncService(t)
	expectList(m, okList(t, alice), nil)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	snap := svc.Snapshot()
	snap[0].Name = "Mallory"

	assert.Equal(t, "Alice", svc.Snapshot()[0].Name)
}

func TestSnapshot_InitiallyEmpty(t *testing.T) {
	svc, _, _ := newTestSyncService(t)

	snap := svc.Snapshot()
	assert.NotNil(t, snap)
	assert.Empty(t, snap)
}

func TestOperations_NeverOverlap(t *testing.T) {
	svc, m, sink := newTestSyncService(t)

	var inFlight, maxInFlight atomic.Int64
	m.EXPECT().Send(gomock.Any(), http.MethodGet, app.CollectionPath, nil).
		DoAndReturn(func(context.Context, string, string, any) (models.Response, error) {
			n := inFlight.Add(1)
			for {
				cur := maxInFlight.Load()
				if n <= cur || maxInFlight.CompareAndSwap(cur, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			inFlight.Add(-1)
			return okList(t, alice), nil
		}).
		Times(8)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.List(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = svc.CheckConnection(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), maxInFlight.Load())
	assertBusyBalanced(t, sink)
}
