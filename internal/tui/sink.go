package tui

import (
	"sync"

	"github.com/MKhiriev/go-student-registry/models"
	tea "github.com/charmbracelet/bubbletea"
)

// messageSender is the part of *tea.Program the sink needs.
type messageSender interface {
	Send(msg tea.Msg)
}

// programSink turns engine callbacks into bubbletea messages. Until a
// program is attached the messages are queued in arrival order.
type programSink struct {
	mu      sync.Mutex
	sender  messageSender
	pending []tea.Msg
}

func (s *programSink) RenderSnapshot(students []models.Student) {
	s.send(snapshotMsg{students: students})
}

func (s *programSink) RenderConnectivityFailure() {
	s.send(connectivityFailedMsg{})
}

func (s *programSink) Notify(message string, severity models.Severity) {
	s.send(notifyMsg{text: message, severity: severity})
}

func (s *programSink) SetBusy(busy bool) {
	s.send(busyMsg{busy: busy})
}

func (s *programSink) send(msg tea.Msg) {
	s.mu.Lock()
	if s.sender == nil {
		s.pending = append(s.pending, msg)
		s.mu.Unlock()
		return
	}
	sender := s.sender
	s.mu.Unlock()

	sender.Send(msg)
}

// attach routes all further messages to sender and returns what was queued
// before.
func (s *programSink) attach(sender messageSender) []tea.Msg {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sender = sender
	pending := s.pending
	s.pending = nil
	return pending
}

// detach makes the sink queue again. Used after the program exits so late
// engine calls never block on a dead program.
func (s *programSink) detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sender = nil
}
