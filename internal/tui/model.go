package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-student-registry/internal/app"
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 4 * time.Second

type screen int

const (
	screenTable screen = iota
	screenForm
	screenConfirmDelete
	screenBuildInfo
)

// tableState tells which of the three table renderings is active.
type tableState int

const (
	tableLoading tableState = iota
	tableReady
	tableFailed
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type status struct {
	text     string
	severity models.Severity
}

// model owns all display state. The sync engine only talks to it through
// messages sent by programSink.
type model struct {
	ctx       context.Context
	sync      service.StudentSyncService
	buildInfo models.AppBuildInfo

	students []models.Student
	state    tableState
	idx      int

	busy    bool
	spinner spinner.Model

	status    status
	statusSeq int

	screen        screen
	form          studentForm
	pendingDelete models.Student

	// messages queued by the sink before the program started.
	replay []tea.Msg
}

func newModel(ctx context.Context, syncService service.StudentSyncService, buildInfo models.AppBuildInfo) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:       ctx,
		sync:      syncService,
		buildInfo: buildInfo,
		spinner:   s,
		status:    status{text: app.MsgConnecting, severity: models.SeverityInfo},
		form:      newStudentForm(),
	}
}

func (m model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.replay)+1)
	for _, msg := range m.replay {
		cmds = append(cmds, replayCmd(msg))
	}
	cmds = append(cmds, m.cmdList())

	return tea.Batch(m.spinner.Tick, tea.Sequence(cmds...))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.students = msg.students
		m.state = tableReady
		m.clampCursor()
		return m, nil
	case connectivityFailedMsg:
		m.state = tableFailed
		return m, nil
	case notifyMsg:
		return m.setStatus(msg.text, msg.severity)
	case busyMsg:
		m.busy = msg.busy
		if m.busy {
			return m, m.spinner.Tick
		}
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = status{}
		}
		return m, nil
	case createDoneMsg:
		m.form.submitting = false
		if msg.err == nil {
			m.form = newStudentForm()
			m.screen = screenTable
		}
		return m, nil
	case spinner.TickMsg:
		if !m.busy && m.state != tableLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenForm {
			var cmd tea.Cmd
			m.form, cmd = m.form.update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(keyMsg)
	case screenConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case screenBuildInfo:
		return m.updateBuildInfo(keyMsg)
	default:
		return m.updateTable(keyMsg)
	}
}

func (m model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.students)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		return m, m.cmdList()
	case key.Matches(msg, keys.ping):
		return m, m.cmdPing()
	case key.Matches(msg, keys.newItem):
		m.screen = screenForm
		return m, nil
	case key.Matches(msg, keys.edit):
		return m.setStatus(app.MsgEditUnderDevelop, models.SeverityInfo)
	case key.Matches(msg, keys.info):
		m.screen = screenBuildInfo
	case key.Matches(msg, keys.delete):
		if student, ok := m.current(); ok {
			m.pendingDelete = student
			m.screen = screenConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		if student, ok := m.current(); ok {
			return m, cmdCopy(student.NIM)
		}
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.forceQuit):
		return m, tea.Quit
	case m.form.submitting:
		return m, nil
	case key.Matches(msg, keys.esc):
		m.form = newStudentForm()
		m.screen = screenTable
		return m, nil
	case key.Matches(msg, keys.enter):
		m.form.submitting = true
		return m, m.cmdCreate(m.form.draft())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.forceQuit):
		return m, tea.Quit
	case key.Matches(msg, keys.yes):
		m.screen = screenTable
		return m, m.cmdDelete(m.pendingDelete.ID)
	case key.Matches(msg, keys.no):
		m.screen = screenTable
		m.pendingDelete = models.Student{}
		return m.setStatus(app.MsgDeleteCancelled, models.SeverityWarning)
	}
	return m, nil
}

func (m model) updateBuildInfo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.forceQuit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.info), key.Matches(msg, keys.enter):
		m.screen = screenTable
	}
	return m, nil
}

// setStatus shows text in the status line and schedules its removal.
func (m model) setStatus(text string, severity models.Severity) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = status{text: text, severity: severity}

	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m model) current() (models.Student, bool) {
	if m.state != tableReady || len(m.students) == 0 || m.idx < 0 || m.idx >= len(m.students) {
		return models.Student{}, false
	}
	return m.students[m.idx], true
}

func (m *model) clampCursor() {
	if m.idx >= len(m.students) {
		m.idx = len(m.students) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// Engine calls run inside commands so the UI never blocks on the network.
// Their outcome reaches the model through the sink, so results are dropped
// here.

func (m model) cmdList() tea.Cmd {
	return func() tea.Msg {
		_, _ = m.sync.List(m.ctx)
		return nil
	}
}

func (m model) cmdPing() tea.Cmd {
	return func() tea.Msg {
		_ = m.sync.CheckConnection(m.ctx)
		return nil
	}
}

func (m model) cmdCreate(draft models.StudentDraft) tea.Cmd {
	return func() tea.Msg {
		_, err := m.sync.Create(m.ctx, draft)
		return createDoneMsg{err: err}
	}
}

func (m model) cmdDelete(id models.StudentID) tea.Cmd {
	return func() tea.Msg {
		_ = m.sync.Delete(m.ctx, id)
		return nil
	}
}

func cmdCopy(nim string) tea.Cmd {
	return func() tea.Msg {
		if err := copyToClipboard(nim); err != nil {
			return notifyMsg{text: fmt.Sprintf("Copy failed: %v", err), severity: models.SeverityError}
		}
		return notifyMsg{text: app.MsgCopiedNIM, severity: models.SeveritySuccess}
	}
}

func replayCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
