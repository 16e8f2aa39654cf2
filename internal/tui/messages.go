package tui

import (
	"github.com/MKhiriev/go-student-registry/models"
)

// Messages produced by the presentation sink.

type snapshotMsg struct {
	students []models.Student
}

type connectivityFailedMsg struct{}

type notifyMsg struct {
	text     string
	severity models.Severity
}

type busyMsg struct {
	busy bool
}

// Messages produced by commands.

type createDoneMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
