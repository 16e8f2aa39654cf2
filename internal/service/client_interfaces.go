package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-student-registry/models"
)

// SnapshotRenderer draws the collection. It is the only place table output
// comes from.
type SnapshotRenderer interface {
	// RenderSnapshot replaces the displayed table with students. An empty,
	// non-nil slice means the collection is empty.
	RenderSnapshot(students []models.Student)

	// RenderConnectivityFailure replaces the displayed table with the
	// "could not load" state.
	RenderConnectivityFailure()
}

// Notifier shows transient messages and the in-progress indicator.
type Notifier interface {
	Notify(message string, severity models.Severity)
	SetBusy(busy bool)
}

// PresentationSink is everything the sync engine needs from a front end.
type PresentationSink interface {
	SnapshotRenderer
	Notifier
}

// StudentSyncService keeps a local snapshot of the remote student collection
// and reports every outcome to a PresentationSink.
//
// Operations are serialized: a second call waits until the first one,
// including its resync, has finished. Failures come back as *SyncError and
// are also reported to the sink, so callers driving a UI may ignore them.
type StudentSyncService interface {
	// List fetches the whole collection and replaces the snapshot. On
	// failure the snapshot is left as it was and the sink renders the
	// connectivity failure state.
	List(ctx context.Context) ([]models.Student, error)

	// Create validates draft locally, posts it and resyncs once on success.
	// A failing resync does not turn a successful create into an error.
	Create(ctx context.Context, draft models.StudentDraft) (models.Student, error)

	// Delete removes the record with the given id and resyncs once on
	// success.
	Delete(ctx context.Context, id models.StudentID) error

	// CheckConnection probes the collection endpoint and notifies the
	// result. The snapshot is never touched.
	CheckConnection(ctx context.Context) error

	// Snapshot returns a copy of the last successfully listed collection.
	Snapshot() []models.Student
}

// ClientRefreshJob periodically re-lists the collection in the background.
type ClientRefreshJob interface {
	// Start stops any running job and launches a new one that calls List
	// every interval. A zero or negative interval leaves the job stopped.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit.
	Stop()
}
